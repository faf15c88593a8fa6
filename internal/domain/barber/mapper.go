package barber

import (
	"github.com/BruksfildServices01/barber-desk/internal/models"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// FromDocument reconciles a stored barber document, whichever schema
// generation wrote it, into the canonical record.
func FromDocument(doc store.Document) models.Barber {
	services := doc.Fields.StringSlice("services")
	if services == nil {
		services = []string{}
	}

	return models.Barber{
		ID:        doc.ID,
		Name:      doc.Fields.String("name"),
		Email:     doc.Fields.String("email"),
		Phone:     doc.Fields.String("phone"),
		WorkStart: workStartField.resolve(doc.Fields),
		WorkEnd:   workEndField.resolve(doc.Fields),
		Services:  services,
		Active:    resolveActive(doc.Fields),
		PhotoURL:  doc.Fields.String("photoUrl"),
		CreatedAt: doc.Fields.Time("createdAt"),
		UpdatedAt: doc.Fields.Time("updatedAt"),
	}
}

func FromDocuments(docs []store.Document) []models.Barber {
	out := make([]models.Barber, 0, len(docs))
	for _, doc := range docs {
		out = append(out, FromDocument(doc))
	}
	return out
}
