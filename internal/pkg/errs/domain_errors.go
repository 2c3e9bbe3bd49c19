package errs

import "errors"

// Sentinel errors shared across usecase layers. Each maps to exactly one
// user-visible failure mode; handlers translate them with errors.Is.
var (
	// Order lifecycle errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotPayable  = errors.New("order is not in a payable state")
	ErrOrderImmutable   = errors.New("order is in a terminal state")
	ErrConcurrentUpdate = errors.New("order was modified concurrently")

	// Checkout errors
	ErrCheckoutUnavailable = errors.New("checkout session could not be created")

	// Refund errors
	ErrOrderNotRefundable    = errors.New("order has no captured payment to refund")
	ErrRefundExceedsCaptured = errors.New("refund amount exceeds captured amount")
	ErrRefundFailed          = errors.New("payment processor rejected refund")

	// Chef / break-mode errors
	ErrChefNotFound     = errors.New("chef not found")
	ErrChefUnavailable  = errors.New("chef is not accepting new bookings")
	ErrBreakJobNotFound = errors.New("break job not found")

	// Webhook errors
	ErrUnknownPaymentSession = errors.New("payment session does not match any order")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
