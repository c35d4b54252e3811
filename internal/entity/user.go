package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the bill owner's profile for data transfer between layers.
// CompanyName and PANVATNumber feed self-issued-invoice detection.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	CompanyName  string    `json:"company_name,omitempty"`
	PANVATNumber string    `json:"pan_vat_number,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
