package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainAppointment "github.com/BruksfildServices01/barber-desk/internal/domain/appointment"
	domainBarber "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

func TestSummaryAggregates(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	appointments := repository.NewAppointmentStoreRepository(st)
	barbers := repository.NewBarberStoreRepository(st)

	seed := []domainAppointment.CreateInput{
		{ClientName: "A", BarberID: "b", Service: "s", Date: "2025-03-10", Time: "09:00"},
		{ClientName: "B", BarberID: "b", Service: "s", Date: "2025-03-10", Time: "11:00", Status: "confirmed"},
		{ClientName: "C", BarberID: "b", Service: "s", Date: "2025-03-11", Time: "10:00", Status: "confirmed"},
	}
	for _, in := range seed {
		_, err := appointments.Create(ctx, in)
		require.NoError(t, err)
	}

	inactive := false
	_, err := barbers.Create(ctx, domainBarber.CreateInput{Name: "Miguel", Services: []string{"Haircut"}})
	require.NoError(t, err)
	_, err = barbers.Create(ctx, domainBarber.CreateInput{Name: "Ana", Services: []string{"Shave"}, Active: &inactive})
	require.NoError(t, err)

	uc := NewSummary(appointments, barbers)
	uc.today = func() string { return "2025-03-10" }

	out, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalAppointments)
	assert.Equal(t, map[string]int{"pending": 1, "confirmed": 2}, out.ByStatus)
	assert.Equal(t, 2, out.TodayCount)
	require.Len(t, out.Today, 2)

	assert.Equal(t, 2, out.TotalBarbers)
	assert.Equal(t, 1, out.ActiveBarbers)
}

func TestSummaryEmptyStore(t *testing.T) {
	st := store.NewMemoryStore()
	uc := NewSummary(
		repository.NewAppointmentStoreRepository(st),
		repository.NewBarberStoreRepository(st),
	)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, out.TotalAppointments)
	assert.NotNil(t, out.ByStatus)
	assert.NotNil(t, out.Today)
	assert.Zero(t, out.TotalBarbers)
}
