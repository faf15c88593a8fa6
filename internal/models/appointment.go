package models

import "time"

// Appointment is the canonical in-memory record shape. Stored documents are
// loosely typed; the domain mappers reconcile them into this struct with
// every optional string defaulted to "" and status defaulted to pending.
type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	// BarberID is a soft reference: never enforced, never cascaded.
	// BarberName is a point-in-time snapshot of the barber's display name at
	// write time; a later rename does not propagate here.
	BarberID   string `json:"barberId"`
	BarberName string `json:"barberName"`

	Service string `json:"service"`

	// Date is YYYY-MM-DD and Time is 24-hour HH:MM; together they are the
	// display ordering key. Zero-padding makes lexicographic order equal
	// chronological order.
	Date string `json:"date"`
	Time string `json:"time"`

	Status string `json:"status"`
	Notes  string `json:"notes"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
