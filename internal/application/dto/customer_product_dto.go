package dto

import "time"

// CustomerProductRequest payload for creating an ownership record.
// product_id may be omitted or point at a product that later disappears
// from inventory; the record stands on its own.
type CustomerProductRequest struct {
	CustomerID       string  `json:"customer_id" validate:"required"`
	ProductID        *string `json:"product_id"`
	SerialNumber     string  `json:"serial_number" validate:"required"`
	InstallationDate string  `json:"installation_date" validate:"required,datetime=2006-01-02"`
	LastServiceDate  string  `json:"last_service_date" validate:"omitempty,datetime=2006-01-02"`
	NextServiceDate  string  `json:"next_service_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks          string  `json:"remarks"`
}

// CustomerProductUpdateRequest payload for updating an ownership record.
// The owning customer is fixed at installation and cannot be reassigned.
type CustomerProductUpdateRequest struct {
	ProductID        *string `json:"product_id"`
	SerialNumber     string  `json:"serial_number" validate:"required"`
	InstallationDate string  `json:"installation_date" validate:"required,datetime=2006-01-02"`
	LastServiceDate  string  `json:"last_service_date" validate:"omitempty,datetime=2006-01-02"`
	NextServiceDate  string  `json:"next_service_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks          string  `json:"remarks"`
}

// CustomerProductResponse one ownership row as listed, including the joined
// display names. product_name is null when the inventory row is gone.
type CustomerProductResponse struct {
	OwnershipID      string    `json:"ownership_id"`
	CustomerID       string    `json:"customer_id"`
	ProductID        *string   `json:"product_id"`
	SerialNumber     string    `json:"serial_number"`
	InstallationDate string    `json:"installation_date"`
	LastServiceDate  *string   `json:"last_service_date"`
	NextServiceDate  *string   `json:"next_service_date"`
	Remarks          string    `json:"remarks"`
	CustomerName     string    `json:"customer_name,omitempty"`
	ProductName      *string   `json:"product_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SearchFields returns the values the ownership search box matches against.
func (p *CustomerProductResponse) SearchFields() []string {
	productName := ""
	if p.ProductName != nil {
		productName = *p.ProductName
	}
	return []string{p.CustomerName, productName, p.SerialNumber}
}
