package repository

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

const appointmentsCollection = "appointments"

type AppointmentStoreRepository struct {
	store store.Store
	now   func() time.Time
}

func NewAppointmentStoreRepository(st store.Store) *AppointmentStoreRepository {
	return &AppointmentStoreRepository{store: st, now: time.Now}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentStoreRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.BarberID == "" || in.Service == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation("all required fields must be provided")
	}

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	createdAt := r.now()

	fields := store.Fields{
		"clientName":  in.ClientName,
		"clientEmail": in.ClientEmail,
		"clientPhone": in.ClientPhone,
		"barberId":    in.BarberID,
		"barberName":  in.BarberName,
		"service":     in.Service,
		"date":        in.Date,
		"time":        in.Time,
		"status":      status,
		"notes":       in.Notes,
		"createdAt":   createdAt,
	}

	id, err := r.store.Insert(ctx, appointmentsCollection, fields)
	if err != nil {
		return nil, httperr.ErrStore("failed to create appointment", err)
	}

	// Echo the submitted fields back rather than re-reading the store.
	return &models.Appointment{
		ID:          id,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		BarberID:    in.BarberID,
		BarberName:  in.BarberName,
		Service:     in.Service,
		Date:        in.Date,
		Time:        in.Time,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   &createdAt,
	}, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentStoreRepository) List(ctx context.Context) ([]models.Appointment, error) {
	docs, err := r.store.ListAll(ctx, appointmentsCollection)
	if err != nil {
		return nil, httperr.ErrStore("failed to load appointments", err)
	}

	list := domain.FromDocuments(docs)
	domain.SortForDisplay(list)
	return list, nil
}

func (r *AppointmentStoreRepository) ListByBarber(
	ctx context.Context,
	barberID string,
) ([]models.Appointment, error) {

	docs, err := r.store.ListWhere(ctx, appointmentsCollection, "barberId", barberID)
	if err != nil {
		return nil, httperr.ErrStore("failed to load appointments", err)
	}

	list := domain.FromDocuments(docs)
	domain.SortForDisplay(list)
	return list, nil
}

func (r *AppointmentStoreRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	// Day view: store orders ascending by time, no in-memory re-sort.
	docs, err := r.store.ListWhere(
		ctx,
		appointmentsCollection,
		"date", date,
		store.OrderBy{Field: "time"},
	)
	if err != nil {
		return nil, httperr.ErrStore("failed to load appointments", err)
	}

	return domain.FromDocuments(docs), nil
}

func (r *AppointmentStoreRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	if id == "" {
		return nil, httperr.ErrValidation("appointment id is required")
	}

	doc, err := r.store.Get(ctx, appointmentsCollection, id)
	if err != nil {
		return nil, httperr.ErrStore("failed to load appointment", err)
	}
	if doc == nil {
		return nil, nil
	}

	ap := domain.FromDocument(*doc)
	return &ap, nil
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

// Update merges only the fields present in the patch. The existence check
// and the write are two separate store calls; a concurrent delete in between
// is a known race and is not handled.
func (r *AppointmentStoreRepository) Update(
	ctx context.Context,
	id string,
	patch domain.Partial,
) error {

	if id == "" {
		return httperr.ErrValidation("appointment id is required")
	}

	doc, err := r.store.Get(ctx, appointmentsCollection, id)
	if err != nil {
		return httperr.ErrStore("failed to load appointment", err)
	}
	if doc == nil {
		return httperr.ErrNotFound("appointment", id)
	}

	fields := patch.Fields()
	fields["updatedAt"] = r.now()

	if err := r.store.Update(ctx, appointmentsCollection, id, fields); err != nil {
		return httperr.ErrStore("failed to update appointment", err)
	}
	return nil
}

func (r *AppointmentStoreRepository) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", httperr.ErrValidation("appointment id is required")
	}

	doc, err := r.store.Get(ctx, appointmentsCollection, id)
	if err != nil {
		return "", httperr.ErrStore("failed to load appointment", err)
	}
	if doc == nil {
		return "", httperr.ErrNotFound("appointment", id)
	}

	if err := r.store.Delete(ctx, appointmentsCollection, id); err != nil {
		return "", httperr.ErrStore("failed to delete appointment", err)
	}
	return id, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentStoreRepository)(nil)
