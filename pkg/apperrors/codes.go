package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMalformed     = "AUTH_TOKEN_MALFORMED"
)

// Authorization errors (AUTHZ_*)
const (
	ErrCodeForbidden = "AUTHZ_FORBIDDEN"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidImage     = "VALIDATION_INVALID_IMAGE"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeUserNotFound    = "RESOURCE_USER_NOT_FOUND"
	ErrCodeContentNotFound = "RESOURCE_CONTENT_NOT_FOUND"
	ErrCodeProofNotFound   = "RESOURCE_PROOF_NOT_FOUND"
	ErrCodeEbookNotFound   = "RESOURCE_EBOOK_NOT_FOUND"
	ErrCodeProductNotFound = "RESOURCE_PRODUCT_NOT_FOUND"
	ErrCodeResourceExists  = "RESOURCE_ALREADY_EXISTS"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
