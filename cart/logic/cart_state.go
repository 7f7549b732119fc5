// Package logic provides the in-memory shopping cart store.
package logic

import (
	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

// CartLine is one product's aggregated quantity in the cart. Quantity is
// always at least 1 while the line is stored.
type CartLine struct {
	Product  catalog.Product
	Quantity int32
}

// Subtotal is the line price at the current product price.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Savings is the line's saving against the original price.
func (l CartLine) Savings() int64 {
	return l.Product.Savings() * int64(l.Quantity)
}

func (s *Store) find(productID string) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Snapshot returns a copy of the lines in first-added order.
func (s *Store) Snapshot() []CartLine {
	return append([]CartLine(nil), s.lines...)
}

// Line returns the line for a product, if present.
func (s *Store) Line(productID string) (CartLine, bool) {
	i := s.find(productID)
	if i < 0 {
		return CartLine{}, false
	}
	return s.lines[i], true
}

// Len is the number of distinct products in the cart.
func (s *Store) Len() int {
	return len(s.lines)
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

// TotalCount is the sum of all line quantities.
func (s *Store) TotalCount() int64 {
	var n int64
	for _, l := range s.lines {
		n += int64(l.Quantity)
	}
	return n
}

// TotalPrice is the sum of price * quantity over all lines.
func (s *Store) TotalPrice() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// TotalSavings is the sum of line savings.
func (s *Store) TotalSavings() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Savings()
	}
	return total
}
