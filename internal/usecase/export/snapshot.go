package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
	"github.com/BruksfildServices01/barber-desk/internal/infra/blob"
	"github.com/BruksfildServices01/barber-desk/internal/store"
)

// ======================================================
// USE CASE — collection snapshot to object storage
// ======================================================

var exportable = map[string]bool{
	"appointments": true,
	"barbers":      true,
}

type Snapshot struct {
	store store.Store
	blob  blob.Store
	now   func() time.Time
}

func NewSnapshot(st store.Store, bs blob.Store) *Snapshot {
	return &Snapshot{store: st, blob: bs, now: time.Now}
}

type exportedDocument struct {
	ID     string       `json:"id"`
	Fields store.Fields `json:"fields"`
}

type Result struct {
	Collection string `json:"collection"`
	Documents  int    `json:"documents"`
	Location   string `json:"location"`
}

// Execute serializes the full collection as JSON and puts it in the bucket.
// The snapshot is raw documents, not the reconciled read model, so legacy
// field names survive into the export.
func (uc *Snapshot) Execute(ctx context.Context, collection string) (*Result, error) {
	if !exportable[collection] {
		return nil, httperr.ErrValidation(fmt.Sprintf("unknown collection %q", collection))
	}

	docs, err := uc.store.ListAll(ctx, collection)
	if err != nil {
		return nil, httperr.ErrStore("failed to read collection for export", err)
	}

	out := make([]exportedDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, exportedDocument{ID: doc.ID, Fields: doc.Fields})
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := fmt.Sprintf(
		"exports/%s/%s.json",
		collection,
		uc.now().UTC().Format("20060102T150405Z"),
	)

	location, err := uc.blob.Put(ctx, key, payload, "application/json")
	if err != nil {
		return nil, httperr.ErrStore("failed to upload export", err)
	}

	return &Result{
		Collection: collection,
		Documents:  len(out),
		Location:   location,
	}, nil
}
