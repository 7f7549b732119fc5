package session

// Error message constants for session commands.
const (
	ErrMsgUnknownCommand    = "Unknown command"
	ErrMsgProductNotFound   = "Product not in catalog"
	ErrMsgQuantityNotNumber = "Quantity must be a whole number"
)
