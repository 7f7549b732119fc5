package session

import (
	"fmt"
	"io"
	"strings"

	cart "github.com/LokeshReddy2201/FUTURE-FS-03/cart/logic"
)

// ANSI escapes used by the event printer.
const (
	ansiGreen   = "\033[92m"
	ansiYellow  = "\033[93m"
	ansiCyan    = "\033[96m"
	ansiMagenta = "\033[95m"
	ansiRed     = "\033[91m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiReset   = "\033[0m"
)

// EventColor returns the color for an event type.
func EventColor(eventType string) string {
	switch {
	case strings.Contains(eventType, "Added"):
		return ansiGreen
	case strings.Contains(eventType, "Updated"):
		return ansiYellow
	case strings.Contains(eventType, "Removed"), strings.Contains(eventType, "Cleared"):
		return ansiRed
	default:
		return ""
	}
}

// EventLogger returns a cart listener that pretty-prints each event to w.
func EventLogger(w io.Writer) cart.Listener {
	return func(e cart.Event) {
		LogEvent(w, e)
	}
}

// LogEvent writes a single event with a colored header.
func LogEvent(w io.Writer, e cart.Event) {
	meta := e.Meta()
	cartID := meta.CartID
	if len(cartID) > 8 {
		cartID = cartID[:8]
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s%s\n", ansiBold, strings.Repeat("─", 60), ansiReset)
	fmt.Fprintf(w, "%s%s[CART]%s %sseq:%d%s  %s%s...%s\n",
		ansiBold, ansiMagenta, ansiReset,
		ansiDim, meta.Sequence, ansiReset,
		ansiCyan, cartID, ansiReset)
	fmt.Fprintf(w, "%s%s%s%s\n", ansiBold, EventColor(e.EventType()), e.EventType(), ansiReset)
	fmt.Fprintln(w, strings.Repeat("─", 60))

	PrintEventDetails(w, e)
}

// PrintEventDetails prints event-specific fields.
func PrintEventDetails(w io.Writer, e cart.Event) {
	switch ev := e.(type) {
	case *cart.ItemAdded:
		fmt.Fprintf(w, "  %sproduct:%s  %s (%s)\n", ansiDim, ansiReset, ev.Product.Name, ev.Product.ID)
		fmt.Fprintf(w, "  %squantity:%s %d\n", ansiDim, ansiReset, ev.NewQuantity)
		fmt.Fprintf(w, "  %stotal:%s    %s\n", ansiDim, ansiReset, Rupees(ev.NewTotal))

	case *cart.QuantityUpdated:
		fmt.Fprintf(w, "  %sproduct:%s  %s\n", ansiDim, ansiReset, ev.ProductID)
		fmt.Fprintf(w, "  %squantity:%s %d -> %d\n", ansiDim, ansiReset, ev.OldQuantity, ev.NewQuantity)
		fmt.Fprintf(w, "  %stotal:%s    %s\n", ansiDim, ansiReset, Rupees(ev.NewTotal))

	case *cart.ItemRemoved:
		fmt.Fprintf(w, "  %sproduct:%s  %s\n", ansiDim, ansiReset, ev.ProductID)
		fmt.Fprintf(w, "  %squantity:%s -%d\n", ansiDim, ansiReset, ev.Quantity)
		fmt.Fprintf(w, "  %stotal:%s    %s\n", ansiDim, ansiReset, Rupees(ev.NewTotal))

	case *cart.CartCleared:
		fmt.Fprintf(w, "  %slines:%s    %d\n", ansiDim, ansiReset, ev.Lines)

	default:
		fmt.Fprintf(w, "  %s(%s)%s\n", ansiDim, e.EventType(), ansiReset)
	}
}
