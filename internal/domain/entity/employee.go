package entity

import "time"

// Employee is a staff member. IDProofType/IDProofNumber identify the
// government document on file (Aadhaar, PAN, Driving License, Voter ID).
type Employee struct {
	ID            string
	Name          string
	Mobile        string
	Address       string
	IDProofType   string
	IDProofNumber string
	BranchName    string
	Designation   string
	JoiningDate   *time.Time
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
