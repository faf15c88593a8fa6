package appointment

import (
	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// ===============================
// Document <-> Record mapping
// ===============================

// FromDocument reshapes a loosely-typed store document into the canonical
// record: every optional string defaults to "" (never absent) and a missing
// status defaults to pending.
func FromDocument(doc store.Document) models.Appointment {
	status := doc.Fields.String("status")
	if status == "" {
		status = string(StatusPending)
	}

	return models.Appointment{
		ID:          doc.ID,
		ClientName:  doc.Fields.String("clientName"),
		ClientEmail: doc.Fields.String("clientEmail"),
		ClientPhone: doc.Fields.String("clientPhone"),
		BarberID:    doc.Fields.String("barberId"),
		BarberName:  doc.Fields.String("barberName"),
		Service:     doc.Fields.String("service"),
		Date:        doc.Fields.String("date"),
		Time:        doc.Fields.String("time"),
		Status:      status,
		Notes:       doc.Fields.String("notes"),
		CreatedAt:   doc.Fields.Time("createdAt"),
		UpdatedAt:   doc.Fields.Time("updatedAt"),
	}
}

func FromDocuments(docs []store.Document) []models.Appointment {
	out := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		out = append(out, FromDocument(doc))
	}
	return out
}
