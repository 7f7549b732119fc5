package logic

// DefaultProducts returns the storefront's featured products.
func DefaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Stylish Summer Dress", Price: 599, OriginalPrice: 999, Discount: 40,
			Image: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400", Rating: 4.5, Reviews: 120, Category: "Fashion"},
		{ID: "2", Name: "Wireless Bluetooth Headphones", Price: 1299, OriginalPrice: 2499, Discount: 48,
			Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", Rating: 4.7, Reviews: 89, Category: "Electronics"},
		{ID: "3", Name: "Home Decor Plant Pot Set", Price: 299, OriginalPrice: 499, Discount: 40,
			Image: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400", Rating: 4.3, Reviews: 45, Category: "Home & Kitchen"},
		{ID: "4", Name: "Premium Face Care Kit", Price: 899, OriginalPrice: 1299, Discount: 31,
			Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400", Rating: 4.6, Reviews: 67, Category: "Beauty"},
		{ID: "5", Name: "Casual Sneakers", Price: 1299, OriginalPrice: 1999, Discount: 35,
			Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400", Rating: 4.4, Reviews: 234, Category: "Fashion"},
		{ID: "6", Name: "Smart Watch", Price: 2499, OriginalPrice: 3999, Discount: 38,
			Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400", Rating: 4.8, Reviews: 156, Category: "Electronics"},
	}
}

// DefaultCategories returns the category strip shown on the home page.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Fashion", Emoji: "👗"},
		{Name: "Electronics", Emoji: "📱"},
		{Name: "Home & Kitchen", Emoji: "🏠"},
		{Name: "Beauty", Emoji: "💄"},
		{Name: "Sports", Emoji: "⚽"},
		{Name: "Books", Emoji: "📚"},
		{Name: "Toys", Emoji: "🧸"},
		{Name: "Automotive", Emoji: "🚗"},
	}
}

// DefaultCatalog builds the catalog from the built-in records.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProducts(), DefaultCategories())
	if err != nil {
		panic(err)
	}
	return c
}
