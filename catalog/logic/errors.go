package logic

// Error message constants for the catalog domain.
const (
	ErrMsgProductIDRequired   = "Product ID is required"
	ErrMsgProductNameRequired = "Product name is required"
	ErrMsgDuplicateProductID  = "Duplicate product ID"
	ErrMsgPriceNegative       = "Price cannot be negative"
	ErrMsgOriginalPriceNeg    = "Original price cannot be negative"
	ErrMsgDiscountRange       = "Discount must be 0-100"
	ErrMsgRatingRange         = "Rating must be 0-5"
	ErrMsgReviewsNegative     = "Review count cannot be negative"
	ErrMsgUnknownSortKey      = "Unknown sort key"
	ErrMsgCategoryRequired    = "Category name is required"
)
