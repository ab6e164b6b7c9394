package middleware

// Request credentials
const (
	// HeaderAuthorization carries the session token as "Bearer <token>"
	HeaderAuthorization = "Authorization"

	// BearerPrefix precedes the token in the Authorization header
	BearerPrefix = "Bearer "

	// QueryParamToken carries the token for clients that cannot set headers, such as EventSource
	QueryParamToken = "token"
)

// Error messages
const (
	ErrMsgSessionRequired = "Session required. Please sign in."
	ErrMsgSessionExpired  = "Session expired. Please sign in again."
)

// Log Messages
const (
	LogMsgMissingToken  = "Request without session token"
	LogMsgInvalidToken  = "Rejected invalid session token"
	LogMsgSessionGone   = "Token refers to an expired session"
	LogMsgEncodeFailure = "Failed to encode auth error response"
)
