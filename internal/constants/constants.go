package constants

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)
