package cart

import (
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
)

// Store is the in-memory registry of live carts, one per sale-entry
// session. All cart access goes through the store lock so the HTTP host
// can mutate carts from concurrent requests.
type Store struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[uuid.UUID]*Cart{}}
}

// Create registers a new empty cart and returns its id.
func (s *Store) Create() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := NewCart()
	s.carts[c.ID] = c
	return c.ID
}

// Mutate runs fn against the cart under the store lock. Errors from fn
// propagate unchanged.
func (s *Store) Mutate(id uuid.UUID, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return cartNotFound(id)
	}
	return fn(c)
}

func cartNotFound(id uuid.UUID) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "cart not found").
		WithDetails(map[string]any{"cart_id": id.String()})
}
