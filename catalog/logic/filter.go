package logic

import (
	"cmp"
	"slices"
	"strings"

	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

// SortKey selects the order of a filtered product list.
type SortKey int

const (
	SortFeatured SortKey = iota
	SortPriceAscending
	SortPriceDescending
	SortRatingDescending
	SortDiscountDescending
)

var sortKeyNames = [...]string{
	SortFeatured:           "featured",
	SortPriceAscending:     "price-ascending",
	SortPriceDescending:    "price-descending",
	SortRatingDescending:   "rating-descending",
	SortDiscountDescending: "discount-descending",
}

func (k SortKey) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return sortKeyNames[k]
}

// Valid reports whether k is one of the declared sort keys.
func (k SortKey) Valid() bool {
	return k >= 0 && int(k) < len(sortKeyNames)
}

// SortKeys lists every sort key name in declaration order.
func SortKeys() []string {
	return append([]string(nil), sortKeyNames[:]...)
}

// ParseSortKey maps a sort key name to its value. The empty string is
// featured; any other unrecognized name is rejected.
func ParseSortKey(name string) (SortKey, error) {
	if name == "" {
		return SortFeatured, nil
	}
	for i, n := range sortKeyNames {
		if strings.EqualFold(n, name) {
			return SortKey(i), nil
		}
	}
	return SortFeatured, shop.NewInvalidArgumentf("%s: %s", ErrMsgUnknownSortKey, name)
}

// FilterAndSort derives the visible product list. Query matches name or
// category as a case-insensitive substring, category matches exactly, and
// both narrow the same set when set together. Ordering is stable with respect
// to the input order. The input slice is not modified.
func FilterAndSort(products []Product, query, category string, key SortKey) ([]Product, error) {
	if !key.Valid() {
		return nil, shop.NewInvalidArgumentf("%s: %d", ErrMsgUnknownSortKey, int(key))
	}

	needle := strings.ToLower(query)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !matchesQuery(p, needle) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch key {
	case SortPriceAscending:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDescending:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRatingDescending:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortDiscountDescending:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Discount, a.Discount) })
	}
	return out, nil
}

func matchesQuery(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
