// Package memory is a transactional in-memory implementation of the repository ports.
// It backs the demo mode (DB_DRIVER=memory) and the use-case tests, and enforces the same
// uniqueness and reference rules as the PostgreSQL schema.
package memory

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

type stockKey struct {
	shopID    string
	productID string
}

type state struct {
	districts map[string]entity.District
	users     map[string]entity.User
	shops     map[string]entity.Shop
	products  map[string]entity.Product
	stock     map[stockKey]entity.StockEntry
}

func newState() *state {
	return &state{
		districts: map[string]entity.District{},
		users:     map[string]entity.User{},
		shops:     map[string]entity.Shop{},
		products:  map[string]entity.Product{},
		stock:     map[stockKey]entity.StockEntry{},
	}
}

// clone copies every table. Entities are plain values, so a shallow map copy is enough.
func (st *state) clone() *state {
	return &state{
		districts: maps.Clone(st.districts),
		users:     maps.Clone(st.users),
		shops:     maps.Clone(st.shops),
		products:  maps.Clone(st.products),
		stock:     maps.Clone(st.stock),
	}
}

// Store holds the committed state. Writers work on a copy that replaces the committed
// state only when they succeed, so a failed write leaves nothing behind.
type Store struct {
	mu   sync.RWMutex
	data *state
	last time.Time
	now  func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newState(), now: time.Now}
}

// view runs fn on the committed state, or on tx when called inside a transaction.
func (s *Store) view(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// update runs fn on a copy of the committed state and commits the copy if fn succeeds.
// Inside a transaction fn works on tx directly; the runner commits.
func (s *Store) update(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// tick returns a timestamp strictly greater than every previous one. Callers hold mu.
func (s *Store) tick() time.Time {
	t := s.now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func sortedBy[T any, K cmp.Ordered](list []*T, key func(*T) K) []*T {
	slices.SortStableFunc(list, func(a, b *T) int { return cmp.Compare(key(a), key(b)) })
	return list
}
