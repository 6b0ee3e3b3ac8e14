// Package store implements the cached per-entity state every admin resource
// shares: one list snapshot, a loading flag and a fetch error, with
// fetch-all / create / update / delete intents delegating to a repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fixora/adminapi/internal/metrics"
)

// ErrMutationInFlight is returned when a mutation is dispatched for a row
// that already has one outstanding. Serializing per row id prevents
// lost-update races on concurrent edits of the same row.
var ErrMutationInFlight = errors.New("another mutation for this row is in flight")

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// MutateFunc performs the remote write and returns the resulting row, which
// is merged into the cached list in place of a re-fetch round trip.
type MutateFunc[T any] func(ctx context.Context) (*T, error)

type DeleteFunc func(ctx context.Context) error

type Store[T any] struct {
	resource string
	id       func(T) string
	fetch    FetchFunc[T]

	mu       sync.Mutex
	items    []T
	errMsg   string
	fetching int
	inFlight map[string]struct{}
}

func New[T any](resource string, id func(T) string, fetch FetchFunc[T]) *Store[T] {
	return &Store[T]{
		resource: resource,
		id:       id,
		fetch:    fetch,
		inFlight: make(map[string]struct{}),
	}
}

// Snapshot returns the cached rows, whether a fetch is outstanding, and the
// last fetch error. Exactly one of {loading, data, error} holds: starting a
// fetch clears the error, and a fetch settles with either data or an error.
func (s *Store[T]) Snapshot() (items []T, loading bool, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...), s.fetching > 0, s.errMsg
}

func (s *Store[T]) Items() []T {
	items, _, _ := s.Snapshot()
	return items
}

// FetchAll dispatches a fetch intent. Concurrent fetches are not
// de-duplicated; every resolution writes, so the last one to resolve wins.
// On failure the cached rows are left untouched (stale-but-valid) and the
// error is surfaced both on the store and to the caller.
func (s *Store[T]) FetchAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	s.fetching++
	s.errMsg = ""
	s.mu.Unlock()

	rows, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching--
	if err != nil {
		s.errMsg = fmt.Sprintf("failed to fetch %s: %v", s.resource, err)
		metrics.StoreFetchesTotal.WithLabelValues(s.resource, "error").Inc()
		return nil, err
	}
	s.items = rows
	metrics.StoreFetchesTotal.WithLabelValues(s.resource, "ok").Inc()
	return append([]T(nil), rows...), nil
}

// Create runs the insert and appends the returned row to the cache. The
// backend-assigned identity arrives with the row, so no re-fetch is needed.
func (s *Store[T]) Create(ctx context.Context, op MutateFunc[T]) (*T, error) {
	row, err := op(ctx)
	if err != nil {
		metrics.StoreMutationsTotal.WithLabelValues(s.resource, "create", "error").Inc()
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *row)
	s.mu.Unlock()
	metrics.StoreMutationsTotal.WithLabelValues(s.resource, "create", "ok").Inc()
	return row, nil
}

// Mutate runs an update for one row under its in-flight lock and merges the
// returned row into the cache. Failures propagate and leave the cache
// untouched.
func (s *Store[T]) Mutate(ctx context.Context, id string, op MutateFunc[T]) (*T, error) {
	if !s.tryLock(id) {
		metrics.StoreMutationsTotal.WithLabelValues(s.resource, "update", "locked").Inc()
		return nil, ErrMutationInFlight
	}
	defer s.unlock(id)

	row, err := op(ctx)
	if err != nil {
		metrics.StoreMutationsTotal.WithLabelValues(s.resource, "update", "error").Inc()
		return nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = *row
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, *row)
	}
	s.mu.Unlock()
	metrics.StoreMutationsTotal.WithLabelValues(s.resource, "update", "ok").Inc()
	return row, nil
}

// Delete runs the remove under the row's in-flight lock and drops the row
// from the cache on success.
func (s *Store[T]) Delete(ctx context.Context, id string, op DeleteFunc) error {
	if !s.tryLock(id) {
		metrics.StoreMutationsTotal.WithLabelValues(s.resource, "delete", "locked").Inc()
		return ErrMutationInFlight
	}
	defer s.unlock(id)

	if err := op(ctx); err != nil {
		metrics.StoreMutationsTotal.WithLabelValues(s.resource, "delete", "error").Inc()
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if s.id(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	metrics.StoreMutationsTotal.WithLabelValues(s.resource, "delete", "ok").Inc()
	return nil
}

func (s *Store[T]) tryLock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Store[T]) unlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}
