// Package i18n provides internationalization support for the warehouse service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyOrderNotFound indicates the requested order does not exist.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyProductNotFound indicates the requested product does not exist.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyMissingDateParam indicates a missing date query parameter.
	ErrKeyMissingDateParam = "error.missing_date_param"
	// ErrKeyValidationOrder indicates an order payload that failed the submission checklist.
	ErrKeyValidationOrder = "error.validation.order"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderSaved indicates a successfully stored order.
	SuccessKeyOrderSaved = "success.order_saved"
)
