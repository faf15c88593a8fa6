package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// recordingStore wraps the memory driver and counts mutating calls, so tests
// can assert that validation failures never reach the store.
type recordingStore struct {
	*store.MemoryStore
	inserts int
	updates int
	deletes int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryStore: store.NewMemoryStore()}
}

func (s *recordingStore) Insert(ctx context.Context, collection string, fields store.Fields) (string, error) {
	s.inserts++
	return s.MemoryStore.Insert(ctx, collection, fields)
}

func (s *recordingStore) Update(ctx context.Context, collection, id string, fields store.Fields) error {
	s.updates++
	return s.MemoryStore.Update(ctx, collection, id, fields)
}

func (s *recordingStore) Delete(ctx context.Context, collection, id string) error {
	s.deletes++
	return s.MemoryStore.Delete(ctx, collection, id)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAppointmentCreateDefaultsStatusAndEchoesInput(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := NewAppointmentStoreRepository(st)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = fixedClock(now)

	ap, err := repo.Create(ctx, domain.CreateInput{
		ClientName: "Carlos",
		BarberID:   "b-1",
		Service:    "Haircut",
		Date:       "2025-03-10",
		Time:       "14:30",
	})
	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "pending", ap.Status)
	require.NotNil(t, ap.CreatedAt)
	assert.True(t, ap.CreatedAt.Equal(now))

	doc, err := st.Get(ctx, "appointments", ap.ID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "pending", doc.Fields.String("status"))
}

func TestAppointmentCreateMissingRequiredFields(t *testing.T) {
	st := newRecordingStore()
	repo := NewAppointmentStoreRepository(st)

	_, err := repo.Create(context.Background(), domain.CreateInput{
		ClientName: "Carlos",
		// no barber, service, date or time
	})

	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
	assert.Zero(t, st.inserts)
}

func TestAppointmentListSortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	seed := []domain.CreateInput{
		{ClientName: "A", BarberID: "b", Service: "s", Date: "2025-01-01", Time: "23:59"},
		{ClientName: "B", BarberID: "b", Service: "s", Date: "2025-01-02", Time: "09:00"},
		{ClientName: "C", BarberID: "b", Service: "s", Date: "2025-01-02", Time: "15:00"},
	}
	for _, in := range seed {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "C", list[0].ClientName)
	assert.Equal(t, "B", list[1].ClientName)
	assert.Equal(t, "A", list[2].ClientName)
}

func TestAppointmentListByDateAscendingByTime(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	seed := []domain.CreateInput{
		{ClientName: "Late", BarberID: "b", Service: "s", Date: "2025-01-02", Time: "15:00"},
		{ClientName: "Early", BarberID: "b", Service: "s", Date: "2025-01-02", Time: "09:00"},
		{ClientName: "Other", BarberID: "b", Service: "s", Date: "2025-01-03", Time: "10:00"},
	}
	for _, in := range seed {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	// The day view orders ascending by time, unlike the other read paths.
	list, err := repo.ListByDate(ctx, "2025-01-02")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Early", list[0].ClientName)
	assert.Equal(t, "Late", list[1].ClientName)
}

func TestAppointmentListByBarberFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	_, err := repo.Create(ctx, domain.CreateInput{ClientName: "A", BarberID: "b-1", Service: "s", Date: "2025-01-01", Time: "10:00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CreateInput{ClientName: "B", BarberID: "b-2", Service: "s", Date: "2025-01-01", Time: "11:00"})
	require.NoError(t, err)

	list, err := repo.ListByBarber(ctx, "b-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].ClientName)
}

func TestAppointmentGetByIDAbsentReturnsNilNil(t *testing.T) {
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	ap, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, ap)
}

func TestAppointmentUpdateTouchesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := NewAppointmentStoreRepository(st)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = fixedClock(created)

	ap, err := repo.Create(ctx, domain.CreateInput{
		ClientName: "Carlos",
		BarberID:   "b-1",
		Service:    "Haircut",
		Date:       "2025-03-10",
		Time:       "14:30",
		Notes:      "first visit",
	})
	require.NoError(t, err)

	updated := created.Add(time.Hour)
	repo.now = fixedClock(updated)

	status := "confirmed"
	require.NoError(t, repo.Update(ctx, ap.ID, domain.Partial{Status: &status}))

	got, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "confirmed", got.Status)
	// Everything not named in the patch survives the merge.
	assert.Equal(t, "Carlos", got.ClientName)
	assert.Equal(t, "first visit", got.Notes)
	assert.Equal(t, "2025-03-10", got.Date)

	require.NotNil(t, got.CreatedAt)
	assert.True(t, got.CreatedAt.Equal(created))
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(updated))
}

func TestAppointmentUpdateCanClearField(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	ap, err := repo.Create(ctx, domain.CreateInput{
		ClientName: "Carlos", BarberID: "b-1", Service: "Haircut",
		Date: "2025-03-10", Time: "14:30", Notes: "first visit",
	})
	require.NoError(t, err)

	// A pointer to "" overwrites, a nil pointer leaves the field alone.
	empty := ""
	require.NoError(t, repo.Update(ctx, ap.ID, domain.Partial{Notes: &empty}))

	got, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Notes)
	assert.Equal(t, "Carlos", got.ClientName)
}

func TestAppointmentUpdateUnknownID(t *testing.T) {
	st := newRecordingStore()
	repo := NewAppointmentStoreRepository(st)

	notes := "x"
	err := repo.Update(context.Background(), "missing", domain.Partial{Notes: &notes})

	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.Zero(t, st.updates)
}

func TestAppointmentDeleteReturnsID(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentStoreRepository(store.NewMemoryStore())

	ap, err := repo.Create(ctx, domain.CreateInput{
		ClientName: "Carlos", BarberID: "b-1", Service: "Haircut",
		Date: "2025-03-10", Time: "14:30",
	})
	require.NoError(t, err)

	id, err := repo.Delete(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, id)

	got, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAppointmentDeleteUnknownID(t *testing.T) {
	st := newRecordingStore()
	repo := NewAppointmentStoreRepository(st)

	_, err := repo.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.Zero(t, st.deletes)
}
