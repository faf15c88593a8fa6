package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	BarberID   string
	BarberName string

	Service string

	Date string
	Time string

	Status string
	Notes  string
}

// Partial carries a partial update: nil means "leave untouched", a pointer
// to "" means "overwrite with empty string". This distinction is the whole
// point of the merge semantics.
type Partial struct {
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	BarberID    *string
	BarberName  *string
	Service     *string
	Date        *string
	Time        *string
	Status      *string
	Notes       *string
}

// Fields returns only the fields explicitly present in the patch.
func (p Partial) Fields() store.Fields {
	fields := store.Fields{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("clientName", p.ClientName)
	set("clientEmail", p.ClientEmail)
	set("clientPhone", p.ClientPhone)
	set("barberId", p.BarberID)
	set("barberName", p.BarberName)
	set("service", p.Service)
	set("date", p.Date)
	set("time", p.Time)
	set("status", p.Status)
	set("notes", p.Notes)
	return fields
}

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*models.Appointment, error)

	// List returns every appointment sorted date desc, time desc.
	List(ctx context.Context) ([]models.Appointment, error)

	// ListByBarber filters server-side on barberId; same sort as List.
	ListByBarber(ctx context.Context, barberID string) ([]models.Appointment, error)

	// ListByDate filters server-side on date and sorts ascending by time.
	// Note the direction is the opposite of the other read paths.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	Update(ctx context.Context, id string, patch Partial) error

	// Delete returns the deleted id.
	Delete(ctx context.Context, id string) (string, error)
}
