package readmodel

import (
	"context"
	"sync"
)

// State is the lifecycle of a read model. It starts Idle and moves through
// Loading into Loaded or Errored; a refetch can run from any state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// Fetch performs the bulk read backing the model.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Snapshot is the consumer-facing view: the current items (never nil), a
// loading flag that is true while any fetch is in flight, and the last error
// message ("" when none).
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	Error   string
}

// ReadModel caches the result of a bulk read for display. Refetch may be
// called concurrently; each call runs its own fetch. Completions apply in
// token order, so a stale response arriving after a newer one already landed
// is discarded instead of overwriting it. Every successful load replaces the
// whole item list at once.
type ReadModel[T any] struct {
	fetch Fetch[T]

	mu       sync.Mutex
	items    []T
	state    State
	errMsg   string
	inflight int
	nextSeq  uint64
	applied  uint64
}

func New[T any](fetch Fetch[T]) *ReadModel[T] {
	return &ReadModel[T]{fetch: fetch}
}

// Refetch runs the bulk read and applies the result unless a later refetch
// already completed. It returns the fetch error, applied or not.
func (m *ReadModel[T]) Refetch(ctx context.Context) error {
	m.mu.Lock()
	m.nextSeq++
	seq := m.nextSeq
	m.inflight++
	m.state = StateLoading
	m.mu.Unlock()

	items, err := m.fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.inflight--
	if seq <= m.applied {
		// A newer response has already landed; drop this one.
		return err
	}
	m.applied = seq

	if err != nil {
		m.state = StateError
		m.errMsg = err.Error()
		return err
	}

	if items == nil {
		items = []T{}
	}
	m.items = items
	m.state = StateLoaded
	m.errMsg = ""
	return nil
}

// Snapshot returns a copy of the current view.
func (m *ReadModel[T]) Snapshot() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]T, len(m.items))
	copy(items, m.items)

	return Snapshot[T]{
		Items:   items,
		Loading: m.inflight > 0,
		Error:   m.errMsg,
	}
}

func (m *ReadModel[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inflight > 0 {
		return StateLoading
	}
	return m.state
}
