package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
)

// Cart is one session's ledger. The per-cart mutex serializes mutation and
// read-out, which gives each session the same atomicity the original
// single-threaded widget had inside an event handler.
type Cart struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	ledger entity.Ledger
}

// Update runs fn against the ledger under the cart lock and returns a copy
// of the ledger as it stands when fn is done. Callers aggregate from that
// copy, so no view computed before the mutation can be served after it.
func (c *Cart) Update(fn func(l *entity.Ledger)) entity.Ledger {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.ledger)
	return c.ledger.Clone()
}

// Ledger returns a copy of the current ledger.
func (c *Cart) Ledger() entity.Ledger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Clone()
}

// CartStore holds every live session cart in memory. Carts are never
// persisted; they live and die with the process.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

func (s *CartStore) Create() *Cart {
	cart := &Cart{ID: uuid.NewString(), CreatedAt: time.Now()}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = cart
	return cart
}

func (s *CartStore) Get(id string) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[id]
	return cart, ok
}

func (s *CartStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
