package logic

import (
	"time"

	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

// EventMeta is carried by every cart event.
type EventMeta struct {
	CartID   string
	Sequence uint32
	At       time.Time
}

// Event is a recorded change to a cart. Only state changes produce events,
// and a Store always emits them as pointers (*ItemAdded, ...).
type Event interface {
	Meta() EventMeta
	EventType() string
}

// ItemAdded records an add; NewQuantity is the line quantity after the merge.
type ItemAdded struct {
	EventMeta
	Product     catalog.Product
	NewQuantity int32
	NewTotal    int64
}

// QuantityUpdated records an explicit quantity change to a positive value.
type QuantityUpdated struct {
	EventMeta
	ProductID   string
	OldQuantity int32
	NewQuantity int32
	NewTotal    int64
}

// ItemRemoved records a deleted line.
type ItemRemoved struct {
	EventMeta
	ProductID string
	Quantity  int32
	NewTotal  int64
}

// CartCleared records that every line was dropped.
type CartCleared struct {
	EventMeta
	Lines int
}

func (e EventMeta) Meta() EventMeta { return e }

func (ItemAdded) EventType() string       { return "ItemAdded" }
func (QuantityUpdated) EventType() string { return "QuantityUpdated" }
func (ItemRemoved) EventType() string     { return "ItemRemoved" }
func (CartCleared) EventType() string     { return "CartCleared" }

// Listener receives every event emitted by a store, in order.
type Listener func(Event)
