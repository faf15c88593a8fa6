package repository

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

const barbersCollection = "barbers"

type BarberStoreRepository struct {
	store store.Store
	now   func() time.Time
}

func NewBarberStoreRepository(st store.Store) *BarberStoreRepository {
	return &BarberStoreRepository{store: st, now: time.Now}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BarberStoreRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Barber, error) {

	if in.Name == "" || len(in.Services) == 0 {
		return nil, httperr.ErrValidation("barber must have a name and at least one service")
	}

	workStart := in.WorkStart
	if workStart == "" {
		workStart = "09:00"
	}
	workEnd := in.WorkEnd
	if workEnd == "" {
		workEnd = "18:00"
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	createdAt := r.now()

	// Writes always use the current schema names; the legacy startDate /
	// endDate / status names only exist on the read path.
	fields := store.Fields{
		"name":      in.Name,
		"email":     in.Email,
		"phone":     in.Phone,
		"startHour": workStart,
		"endHour":   workEnd,
		"services":  in.Services,
		"isActive":  active,
		"createdAt": createdAt,
	}

	id, err := r.store.Insert(ctx, barbersCollection, fields)
	if err != nil {
		return nil, httperr.ErrStore("failed to create barber", err)
	}

	return &models.Barber{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		WorkStart: workStart,
		WorkEnd:   workEnd,
		Services:  in.Services,
		Active:    active,
		CreatedAt: &createdAt,
	}, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BarberStoreRepository) List(ctx context.Context) ([]models.Barber, error) {
	docs, err := r.store.ListAll(ctx, barbersCollection)
	if err != nil {
		return nil, httperr.ErrStore("failed to load barbers", err)
	}
	return domain.FromDocuments(docs), nil
}

func (r *BarberStoreRepository) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	if id == "" {
		return nil, httperr.ErrValidation("barber id is required")
	}

	doc, err := r.store.Get(ctx, barbersCollection, id)
	if err != nil {
		return nil, httperr.ErrStore("failed to load barber", err)
	}
	if doc == nil {
		return nil, nil
	}

	b := domain.FromDocument(*doc)
	return &b, nil
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

// Update applies partial-update semantics: a field absent from the patch is
// neither validated nor written.
func (r *BarberStoreRepository) Update(
	ctx context.Context,
	id string,
	patch domain.Partial,
) error {

	if id == "" {
		return httperr.ErrValidation("barber id is required")
	}

	if patch.Name != nil && *patch.Name == "" {
		return httperr.ErrValidation("barber name is required")
	}
	if patch.Services != nil && len(*patch.Services) == 0 {
		return httperr.ErrValidation("barber must have at least one service")
	}

	doc, err := r.store.Get(ctx, barbersCollection, id)
	if err != nil {
		return httperr.ErrStore("failed to load barber", err)
	}
	if doc == nil {
		return httperr.ErrNotFound("barber", id)
	}

	fields := patch.Fields()
	fields["updatedAt"] = r.now()

	if err := r.store.Update(ctx, barbersCollection, id, fields); err != nil {
		return httperr.ErrStore("failed to update barber", err)
	}
	return nil
}

// Delete removes the barber only. Appointments referencing it keep their
// dangling barberId and cached barberName.
func (r *BarberStoreRepository) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", httperr.ErrValidation("barber id is required")
	}

	doc, err := r.store.Get(ctx, barbersCollection, id)
	if err != nil {
		return "", httperr.ErrStore("failed to load barber", err)
	}
	if doc == nil {
		return "", httperr.ErrNotFound("barber", id)
	}

	if err := r.store.Delete(ctx, barbersCollection, id); err != nil {
		return "", httperr.ErrStore("failed to delete barber", err)
	}
	return id, nil
}

// Compile-time check
var _ domain.Repository = (*BarberStoreRepository)(nil)
