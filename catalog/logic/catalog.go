package logic

import (
	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

// Catalog is the fixed, read-only product list offered by the storefront.
type Catalog struct {
	products   []Product
	index      map[string]int
	categories []Category
}

// NewCatalog validates the records and returns a catalog preserving their order.
func NewCatalog(products []Product, categories []Category) (*Catalog, error) {
	seen := make(map[string]struct{}, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		if err := validateProduct(p, seen); err != nil {
			return nil, err
		}
		index[p.ID] = i
	}
	for _, c := range categories {
		if err := shop.RequireExists(c.Name, ErrMsgCategoryRequired); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		products:   append([]Product(nil), products...),
		index:      index,
		categories: append([]Category(nil), categories...),
	}, nil
}

func validateProduct(p Product, seen map[string]struct{}) error {
	if err := shop.RequireExists(p.ID, ErrMsgProductIDRequired); err != nil {
		return err
	}
	return shop.FirstError(
		shop.RequireUnique(seen, p.ID, ErrMsgDuplicateProductID),
		shop.RequireExists(p.Name, ErrMsgProductNameRequired),
		shop.RequireNonNegative(p.Price, ErrMsgPriceNegative),
		shop.RequireNonNegative(p.OriginalPrice, ErrMsgOriginalPriceNeg),
		shop.RequireInRange(p.Discount, 0, 100, ErrMsgDiscountRange),
		shop.RequireInRange(p.Rating, 0, 5, ErrMsgRatingRange),
		shop.RequireNonNegative(p.Reviews, ErrMsgReviewsNegative),
	)
}

// Products returns a copy of the catalog in declaration order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Lookup finds a product by id.
func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Categories returns the category strip in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Filter applies a FilterState to the catalog.
func (c *Catalog) Filter(fs FilterState) ([]Product, error) {
	return FilterAndSort(c.products, fs.Query, fs.Category, fs.Sort)
}
