package logic

// Replay rebuilds a cart from its event history. Events are applied in
// order; the rebuilt store continues the sequence after the last event and
// does not re-emit the replayed events. The cart id is taken from the history
// unless an option overrides it.
func Replay(events []Event, opts ...Option) *Store {
	if len(events) > 0 {
		opts = append([]Option{WithID(events[0].Meta().CartID)}, opts...)
	}
	s := NewStore(opts...)
	for _, e := range events {
		s.apply(e)
		s.seq = e.Meta().Sequence + 1
	}
	return s
}

func (s *Store) apply(e Event) {
	// Stores emit pointers; value events from other sources are accepted too.
	switch ev := e.(type) {
	case ItemAdded:
		e = &ev
	case QuantityUpdated:
		e = &ev
	case ItemRemoved:
		e = &ev
	case CartCleared:
		e = &ev
	}

	switch ev := e.(type) {
	case *ItemAdded:
		if i := s.find(ev.Product.ID); i >= 0 {
			s.lines[i].Quantity = ev.NewQuantity
		} else {
			s.lines = append(s.lines, CartLine{Product: ev.Product, Quantity: ev.NewQuantity})
		}

	case *QuantityUpdated:
		if i := s.find(ev.ProductID); i >= 0 {
			s.lines[i].Quantity = ev.NewQuantity
		}

	case *ItemRemoved:
		if i := s.find(ev.ProductID); i >= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}

	case *CartCleared:
		s.lines = nil
	}
}
