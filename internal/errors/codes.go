package errors

// ErrorCode is a standardized error code used throughout the API.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthForbidden          ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserLookupFailed  ErrorCode = "USER_003"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferWrongCredential ErrorCode = "TRANSFER_001"
	TransferInvalidAmount   ErrorCode = "TRANSFER_002"
	TransferSubmissionError ErrorCode = "TRANSFER_003"
	TransferInvalidChannel  ErrorCode = "TRANSFER_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages.
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthForbidden:          "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserLookupFailed:  "Could not look up the user",

	TransferWrongCredential: "Transaction password is incorrect",
	TransferInvalidAmount:   "Invalid transfer amount",
	TransferSubmissionError: "Could not complete the transaction",
	TransferInvalidChannel:  "Invalid transfer channel",

	SystemInternalError:     "An unexpected error occurred. Please contact support with the trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
// Unknown codes return a generic message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks whether code is a registered error code.
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
