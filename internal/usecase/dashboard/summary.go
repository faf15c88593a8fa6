package dashboard

import (
	"context"
	"time"

	domainAppointment "github.com/BruksfildServices01/barber-desk/internal/domain/appointment"
	domainBarber "github.com/BruksfildServices01/barber-desk/internal/domain/barber"
	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/readmodel"
)

// ======================================================
// USE CASE — dashboard summary
// ======================================================

type Summary struct {
	appointments *readmodel.ReadModel[models.Appointment]
	barbers      *readmodel.ReadModel[models.Barber]
	today        func() string
}

func NewSummary(
	appointmentRepo domainAppointment.Repository,
	barberRepo domainBarber.Repository,
) *Summary {
	return &Summary{
		appointments: readmodel.New(appointmentRepo.List),
		barbers:      readmodel.New(barberRepo.List),
		today: func() string {
			return time.Now().Format("2006-01-02")
		},
	}
}

type Output struct {
	TotalAppointments int            `json:"totalAppointments"`
	ByStatus          map[string]int `json:"byStatus"`

	TodayCount int                  `json:"todayCount"`
	Today      []models.Appointment `json:"today"`

	TotalBarbers  int `json:"totalBarbers"`
	ActiveBarbers int `json:"activeBarbers"`
}

// Execute refreshes both read models and aggregates the snapshot. A stale
// in-flight refresh from an overlapping request cannot clobber a newer one;
// the read models discard it by request token.
func (uc *Summary) Execute(ctx context.Context) (*Output, error) {
	if err := uc.appointments.Refetch(ctx); err != nil {
		return nil, err
	}
	if err := uc.barbers.Refetch(ctx); err != nil {
		return nil, err
	}

	appointments := uc.appointments.Snapshot().Items
	barbers := uc.barbers.Snapshot().Items

	out := &Output{
		TotalAppointments: len(appointments),
		ByStatus:          map[string]int{},
		Today:             []models.Appointment{},
		TotalBarbers:      len(barbers),
	}

	today := uc.today()
	for _, ap := range appointments {
		out.ByStatus[ap.Status]++
		if ap.Date == today {
			out.Today = append(out.Today, ap)
		}
	}
	out.TodayCount = len(out.Today)

	for _, b := range barbers {
		if b.Active {
			out.ActiveBarbers++
		}
	}

	return out, nil
}
