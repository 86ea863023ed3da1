package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

// EmployeeUseCase use cases for employees.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase builds the use case.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List returns every employee, newest first.
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, employeeResponse(e))
	}
	return out, nil
}

// Create validates the payload, mints the id and timestamps, and persists
// the employee. The stored row is echoed back.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return employeeResponse(e), nil
}

// Update overwrites every writable field of an existing employee.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	e.ID = id
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return employeeResponse(e), nil
}

// Delete removes an employee.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func employeeFromRequest(in dto.EmployeeRequest) (*entity.Employee, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	joining, err := dto.ParseDatePtr(in.JoiningDate)
	if err != nil {
		return nil, err
	}
	return &entity.Employee{
		Name:          in.Name,
		Mobile:        in.Mobile,
		Address:       in.Address,
		IDProofType:   in.IDProofType,
		IDProofNumber: in.IDProofNumber,
		BranchName:    in.BranchName,
		Designation:   in.Designation,
		JoiningDate:   joining,
		UpdatedBy:     in.UpdatedBy,
	}, nil
}

func employeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		EmployeeID:    e.ID,
		Name:          e.Name,
		Mobile:        e.Mobile,
		Address:       e.Address,
		IDProofType:   e.IDProofType,
		IDProofNumber: e.IDProofNumber,
		BranchName:    e.BranchName,
		Designation:   e.Designation,
		JoiningDate:   dto.FormatDatePtr(e.JoiningDate),
		UpdatedBy:     e.UpdatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
