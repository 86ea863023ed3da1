package dto

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/waterbiz/waterbiz-api/internal/domain"
)

// ErrorResponse error body, matching what the UI expects: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirmation body for operations that return no record.
type MessageResponse struct {
	Message string `json:"message"`
}

var validate = validator.New()

// Validate runs the struct's validate tags. Failures come back as
// domain.ErrInvalidInput wrapped with the field detail, so handlers can map
// them to 400 without importing the validator.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ParseDate parses a wire date. Validation has already checked the layout,
// so errors here only surface for values that bypassed it.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// ParseDatePtr parses an optional wire date; empty means absent.
func ParseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date-only field for responses.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr renders an optional date-only field; nil stays nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
