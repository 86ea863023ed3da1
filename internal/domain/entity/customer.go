package entity

import "time"

// Customer is a buyer of machines or service, reachable at one or two mobile
// numbers. PrimaryMobile is always a 10-digit number; SecondaryMobile and
// MapLocation may be empty.
type Customer struct {
	ID              string
	Name            string
	PrimaryMobile   string
	SecondaryMobile string
	Address         string
	MapLocation     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
