package dto

import "time"

// EmployeeRequest create/update payload. Everything except branch name,
// designation, joining date and updated_by is required.
type EmployeeRequest struct {
	Name          string `json:"name" validate:"required"`
	Mobile        string `json:"mobile" validate:"required,len=10,number"`
	Address       string `json:"address" validate:"required"`
	IDProofType   string `json:"id_proof_type" validate:"required,oneof=Aadhaar PAN 'Driving License' 'Voter ID'"`
	IDProofNumber string `json:"id_proof_number" validate:"required"`
	BranchName    string `json:"branch_name"`
	Designation   string `json:"designation"`
	JoiningDate   string `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
	UpdatedBy     string `json:"updated_by"`
}

// EmployeeResponse one employee row.
type EmployeeResponse struct {
	EmployeeID    string    `json:"employee_id"`
	Name          string    `json:"name"`
	Mobile        string    `json:"mobile"`
	Address       string    `json:"address"`
	IDProofType   string    `json:"id_proof_type"`
	IDProofNumber string    `json:"id_proof_number"`
	BranchName    string    `json:"branch_name"`
	Designation   string    `json:"designation"`
	JoiningDate   *string   `json:"joining_date"`
	UpdatedBy     string    `json:"updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SearchFields returns the values the employee search box matches against.
func (e *EmployeeResponse) SearchFields() []string {
	return []string{e.Name, e.Mobile, e.Address, e.BranchName}
}
