package repository

import "github.com/waterbiz/waterbiz-api/internal/domain/entity"

// EmployeeRepository is the persistence port for Employee.
type EmployeeRepository interface {
	List() ([]*entity.Employee, error)
	Create(e *entity.Employee) error
	Update(e *entity.Employee) error
	Delete(id string) error
}
