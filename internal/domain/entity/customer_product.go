package entity

import "time"

// CustomerProduct is an ownership record: one physical unit installed at one
// customer's premises. ProductID is advisory only — the inventory row it
// points at may have been deleted, in which case listings still return this
// record with no product name.
type CustomerProduct struct {
	ID               string
	CustomerID       string
	ProductID        *string
	SerialNumber     string
	InstallationDate time.Time
	LastServiceDate  *time.Time
	NextServiceDate  *time.Time
	Remarks          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CustomerProductListing is a CustomerProduct augmented with the display
// fields listings join in: the owning customer's name and, when the
// inventory row still exists, the product name.
type CustomerProductListing struct {
	CustomerProduct
	CustomerName string
	ProductName  *string
}

// ServiceRollover returns the service dates applied when a unit is serviced:
// last service is today, next service is due three calendar months later.
// Prior values play no part; the rule is absolute, not incremental.
func ServiceRollover(now time.Time) (last, next time.Time) {
	last = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next = last.AddDate(0, 3, 0)
	return last, next
}
