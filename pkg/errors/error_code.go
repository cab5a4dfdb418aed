package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation and configuration errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 106
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeMissingParameter     ErrorCode = 109
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidThreshold     ErrorCode = 112
	ErrCodeConfigReadFailed     ErrorCode = 120
	ErrCodeConfigParseFailed    ErrorCode = 121

	// Protocol input errors (200-299). Every code in this range is malformed input.
	ErrCodeMalformedCommand     ErrorCode = 200
	ErrCodeMalformedNumber      ErrorCode = 201
	ErrCodeMalformedCandle      ErrorCode = 202
	ErrCodeMalformedStacks      ErrorCode = 203
	ErrCodeUnknownCandleField   ErrorCode = 204
	ErrCodeDuplicateCandleField ErrorCode = 205
	ErrCodeIncompleteFormat     ErrorCode = 206
	ErrCodeEmptyBatch           ErrorCode = 207

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 302

	// Strategy errors (400-499)
	ErrCodeStrategyNotFound      ErrorCode = 400
	ErrCodeStrategyAlreadyExists ErrorCode = 401
	ErrCodeStrategyConfigError   ErrorCode = 402
	ErrCodeVersionMismatch       ErrorCode = 404

	// Output errors (500-599)
	ErrCodeWriteFailed ErrorCode = 500
)

// IsMalformedInput reports whether code belongs to the protocol input range.
func (c ErrorCode) IsMalformedInput() bool {
	return c >= 200 && c < 300
}
