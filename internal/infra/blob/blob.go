package blob

import (
	"context"
	"errors"
)

// Store is the object-storage boundary used for collection exports and
// barber photos. Put returns a stable location for the stored object.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Disabled is the no-bucket fallback: every Put fails loudly instead of
// pretending the object went somewhere.
type Disabled struct{}

func (Disabled) Put(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("object storage is not configured")
}
