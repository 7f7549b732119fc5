// Package logic provides the product catalog and its pure filter engine.
package logic

// Product is a read-only catalog record. Prices are whole rupees.
type Product struct {
	ID            string
	Name          string
	Price         int64
	OriginalPrice int64
	Discount      int32 // percent, 0-100
	Image         string
	Rating        float64 // 0.0-5.0
	Reviews       int32
	Category      string
}

// Savings is the amount saved against the original price, never negative.
func (p Product) Savings() int64 {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return p.OriginalPrice - p.Price
}

// Category is one entry of the storefront's category strip.
type Category struct {
	Name  string
	Emoji string
}
