package dto

import "time"

// CustomerRequest create/update payload. The rules mirror the ones the UI
// enforces in the form: name, a 10-digit primary mobile and address are
// required; the rest may be blank.
type CustomerRequest struct {
	Name            string `json:"name" validate:"required"`
	PrimaryMobile   string `json:"primary_mobile" validate:"required,len=10,number"`
	SecondaryMobile string `json:"secondary_mobile"`
	Address         string `json:"address" validate:"required"`
	MapLocation     string `json:"map_location"`
}

// CustomerResponse one customer row.
type CustomerResponse struct {
	CustomerID      string    `json:"customer_id"`
	Name            string    `json:"name"`
	PrimaryMobile   string    `json:"primary_mobile"`
	SecondaryMobile string    `json:"secondary_mobile"`
	Address         string    `json:"address"`
	MapLocation     string    `json:"map_location"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SearchFields returns the values the customer search box matches against.
func (c *CustomerResponse) SearchFields() []string {
	return []string{c.Name, c.PrimaryMobile, c.Address}
}

// CustomerDeleteResponse delete confirmation carrying the removed row.
type CustomerDeleteResponse struct {
	Message string           `json:"message"`
	Deleted CustomerResponse `json:"deleted"`
}
