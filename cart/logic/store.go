package logic

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

// Store is a single-owner shopping cart. It is not safe for concurrent use.
type Store struct {
	id        string
	lines     []CartLine
	seq       uint32
	logger    *zap.Logger
	listeners []Listener
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithListener subscribes fn to the store's events.
func WithListener(fn Listener) Option {
	return func(s *Store) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

// WithID overrides the generated cart id.
func WithID(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.id = id
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty cart.
func NewStore(opts ...Option) *Store {
	s := &Store{
		id:     uuid.NewString(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("cart_id", s.id))
	return s
}

// ID returns the cart id.
func (s *Store) ID() string {
	return s.id
}

// Add puts one unit of p in the cart, merging with an existing line.
func (s *Store) Add(p catalog.Product) {
	var qty int32 = 1
	if i := s.find(p.ID); i >= 0 {
		s.lines[i].Quantity++
		qty = s.lines[i].Quantity
	} else {
		s.lines = append(s.lines, CartLine{Product: p, Quantity: 1})
	}

	s.logger.Debug("item added", zap.String("product_id", p.ID), zap.Int32("quantity", qty))
	s.emit(&ItemAdded{
		EventMeta:   s.nextMeta(),
		Product:     p,
		NewQuantity: qty,
		NewTotal:    s.TotalPrice(),
	})
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (s *Store) Remove(productID string) {
	i := s.find(productID)
	if i < 0 {
		return
	}
	removed := s.lines[i]
	s.lines = append(s.lines[:i], s.lines[i+1:]...)

	s.logger.Debug("item removed", zap.String("product_id", productID))
	s.emit(&ItemRemoved{
		EventMeta: s.nextMeta(),
		ProductID: productID,
		Quantity:  removed.Quantity,
		NewTotal:  s.TotalPrice(),
	})
}

// SetQuantity sets the line quantity. A quantity of zero or less removes the
// line. Unknown ids are ignored.
func (s *Store) SetQuantity(productID string, quantity int32) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	i := s.find(productID)
	if i < 0 {
		return
	}
	old := s.lines[i].Quantity
	if old == quantity {
		return
	}
	s.lines[i].Quantity = quantity

	s.logger.Debug("quantity updated", zap.String("product_id", productID),
		zap.Int32("old_quantity", old), zap.Int32("new_quantity", quantity))
	s.emit(&QuantityUpdated{
		EventMeta:   s.nextMeta(),
		ProductID:   productID,
		OldQuantity: old,
		NewQuantity: quantity,
		NewTotal:    s.TotalPrice(),
	})
}

// Clear drops every line.
func (s *Store) Clear() {
	if len(s.lines) == 0 {
		return
	}
	n := len(s.lines)
	s.lines = nil

	s.logger.Debug("cart cleared", zap.Int("lines", n))
	s.emit(&CartCleared{EventMeta: s.nextMeta(), Lines: n})
}

func (s *Store) nextMeta() EventMeta {
	m := EventMeta{CartID: s.id, Sequence: s.seq, At: s.now()}
	s.seq++
	return m
}

func (s *Store) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}
