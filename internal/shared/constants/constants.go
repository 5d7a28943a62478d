package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// ContextKeyUser is the gin context key carrying the authenticated
	// operator name.
	ContextKeyUser = "user"

	// DateFormat is the wire format for date-only fields.
	DateFormat = "2006-01-02"
)
