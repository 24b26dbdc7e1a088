package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidSide          ErrorCode = 102
	ErrCodeInvalidRate          ErrorCode = 103
	ErrCodeInvalidQuote         ErrorCode = 104

	// Config file errors (200-299)
	ErrCodeConfigRead        ErrorCode = 200
	ErrCodeConfigParse       ErrorCode = 201
	ErrCodeUnsupportedFormat ErrorCode = 202
)
