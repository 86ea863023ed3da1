package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the adapter.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// List returns every employee, newest first.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `
		SELECT employee_id, name, mobile, address, id_proof_type, id_proof_number, branch_name, designation, joining_date, updated_by, created_at, updated_at
		FROM employees ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Mobile, &e.Address, &e.IDProofType, &e.IDProofNumber,
			&e.BranchName, &e.Designation, &e.JoiningDate, &e.UpdatedBy,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create persists a new employee.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (employee_id, name, mobile, address, id_proof_type, id_proof_number, branch_name, designation, joining_date, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Mobile, e.Address, e.IDProofType, e.IDProofNumber,
		e.BranchName, e.Designation, e.JoiningDate, e.UpdatedBy,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update overwrites every writable field. Reads back created_at so the
// handler can echo the stored row.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, mobile = $3, address = $4, id_proof_type = $5, id_proof_number = $6,
		    branch_name = $7, designation = $8, joining_date = $9, updated_by = $10, updated_at = $11
		WHERE employee_id = $1
		RETURNING created_at`
	err := r.q.QueryRow(context.Background(), query,
		e.ID, e.Name, e.Mobile, e.Address, e.IDProofType, e.IDProofNumber,
		e.BranchName, e.Designation, e.JoiningDate, e.UpdatedBy, e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete removes an employee.
func (r *EmployeeRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
