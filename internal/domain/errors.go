package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgInvalidToken    = "invalid session token"

	// Case errors
	ErrMsgCaseNotFound   = "case not found"
	ErrMsgEmptyCase      = "case has no items"
	ErrMsgSpinInProgress = "a spin is already in progress"
	ErrMsgSpinNotFound   = "spin not found"
	ErrMsgInvalidRarity  = "invalid rarity"
	ErrMsgSkinNotFound   = "skin not found"

	// Economy errors
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgItemNotInInventory = "item not in inventory"
	ErrMsgInvalidAmount      = "amount must be positive"
	ErrMsgEmptySelection     = "no items selected"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrInvalidToken    = errors.New(ErrMsgInvalidToken)

	ErrCaseNotFound   = errors.New(ErrMsgCaseNotFound)
	ErrEmptyCase      = errors.New(ErrMsgEmptyCase)
	ErrSpinInProgress = errors.New(ErrMsgSpinInProgress)
	ErrSpinNotFound   = errors.New(ErrMsgSpinNotFound)
	ErrInvalidRarity  = errors.New(ErrMsgInvalidRarity)
	ErrSkinNotFound   = errors.New(ErrMsgSkinNotFound)

	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrItemNotInInventory = errors.New(ErrMsgItemNotInInventory)
	ErrInvalidAmount      = errors.New(ErrMsgInvalidAmount)
	ErrEmptySelection     = errors.New(ErrMsgEmptySelection)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
