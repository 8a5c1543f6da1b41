package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest = "Invalid request body"

	// Item errors
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgAttributeNotFoundError = "Attribute not found"

	// Effect errors
	ErrMsgEffectNotRegisteredError = "Unknown effect kind"
	ErrMsgEffectConstructionError  = "Effect could not be constructed"
	ErrMsgAttachEffectFailed       = "Failed to attach effect"

	// Admin errors
	ErrMsgReloadConfigFailed = "Failed to reload item configuration"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
)

// Success messages for API responses
const (
	MsgEffectAttached  = "Effect attached"
	MsgCatalogReloaded = "Catalog reloaded"
)
