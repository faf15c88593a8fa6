package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barber-desk/internal/store"
)

const collection = "audit_log"

// Logger appends audit entries as documents in the audit_log collection.
type Logger struct {
	store store.Store
}

func New(st store.Store) *Logger {
	return &Logger{store: st}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := store.Fields{
		"action":    action,
		"entity":    entity,
		"entityId":  entityID,
		"metadata":  metaJSON,
		"createdAt": time.Now(),
	}

	_, err := l.store.Insert(context.Background(), collection, entry)
	return err
}
