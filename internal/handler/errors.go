package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgSessionRequired       = "Session required. Please sign in."
	ErrMsgLoginFailed           = "Failed to sign in"
	ErrMsgQRCodeFailed          = "Failed to render QR code"
)

// Success messages for API responses
const (
	MsgLoggedOut = "Signed out"
)

// Operation names used in logs
const (
	OpLogin      = "Login"
	OpOpenCase   = "Open case"
	OpGetSpin    = "Get spin"
	OpGetCase    = "Get case"
	OpListCases  = "List cases"
	OpInventory  = "Get inventory"
	OpQuote      = "Quote sale"
	OpSell       = "Sell items"
	OpSellAll    = "Sell all items"
	OpBalance    = "Get balance"
	OpTopUp      = "Top up"
	OpTopUpQR    = "Top up QR code"
	OpProfile    = "Get profile"
	OpSteamLogin = "Steam login URL"
	OpActivity   = "Get activity"
)
