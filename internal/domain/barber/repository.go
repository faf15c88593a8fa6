package barber

import (
	"context"

	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Name  string
	Email string
	Phone string

	WorkStart string
	WorkEnd   string

	Services []string

	// Active defaults to true when nil.
	Active *bool
}

// Partial is a partial update; nil fields are left untouched. Writes always
// target the current schema names (startHour/endHour/isActive), legacy names
// only ever appear on the read path.
type Partial struct {
	Name      *string
	Email     *string
	Phone     *string
	WorkStart *string
	WorkEnd   *string
	Services  *[]string
	Active    *bool
	PhotoURL  *string
}

func (p Partial) Fields() store.Fields {
	fields := store.Fields{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Phone != nil {
		fields["phone"] = *p.Phone
	}
	if p.WorkStart != nil {
		fields["startHour"] = *p.WorkStart
	}
	if p.WorkEnd != nil {
		fields["endHour"] = *p.WorkEnd
	}
	if p.Services != nil {
		fields["services"] = *p.Services
	}
	if p.Active != nil {
		fields["isActive"] = *p.Active
	}
	if p.PhotoURL != nil {
		fields["photoUrl"] = *p.PhotoURL
	}
	return fields
}

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*models.Barber, error)

	List(ctx context.Context) ([]models.Barber, error)

	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Barber, error)

	Update(ctx context.Context, id string, patch Partial) error

	// Delete returns the deleted id. Existing appointments referencing the
	// barber are left alone; the reference is soft.
	Delete(ctx context.Context, id string) (string, error)
}
