package models

import "time"

// Barber is the canonical barber record. Work hours and the active flag have
// lived under two generations of field names in the store; the domain mapper
// reconciles both (see domain/barber).
type Barber struct {
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	WorkStart string `json:"workStart"` // HH:MM, default 09:00
	WorkEnd   string `json:"workEnd"`   // HH:MM, default 18:00

	Services []string `json:"services"`

	Active bool `json:"active"`

	PhotoURL string `json:"photoUrl,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
