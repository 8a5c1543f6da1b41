package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgItemNotFound         = "item not found"
	ErrMsgAttributeNotFound    = "attribute not found"
	ErrMsgEffectNotRegistered  = "effect kind not registered"
	ErrMsgEffectConstruction   = "effect construction failed"
	ErrMsgDuplicateEffectKind  = "effect kind already registered"
	ErrMsgInvalidAttributeKind = "invalid attribute kind"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrAttributeNotFound = errors.New(ErrMsgAttributeNotFound)

	// ErrEffectNotRegistered reports a get-or-create call for a kind no
	// factory was registered for. Recoverable: nothing is attached and a
	// later call for the same kind may succeed once a factory exists.
	ErrEffectNotRegistered = errors.New(ErrMsgEffectNotRegistered)

	// ErrEffectConstruction reports a factory failure. Recoverable: the
	// effect map is untouched and a retry with the same kind is allowed.
	ErrEffectConstruction = errors.New(ErrMsgEffectConstruction)

	ErrDuplicateEffectKind  = errors.New(ErrMsgDuplicateEffectKind)
	ErrInvalidAttributeKind = errors.New(ErrMsgInvalidAttributeKind)
)
