package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrMissingField(field string) *AppError {
	return New("VAL_002", fmt.Sprintf("missing required field: %s", field), http.StatusBadRequest)
}

func ErrUnknownStateCode(code int) *AppError {
	return New("VAL_003", fmt.Sprintf("unknown payment state code: %d", code), http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_004", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Gateway (AUTH / GW) ----

// ErrGatewayAuth signals that the client-credentials exchange with the
// payment gateway failed or could not be attempted.
func ErrGatewayAuth(err error) *AppError {
	return Wrap("AUTH_001", "Payment gateway authentication failed", http.StatusBadGateway, err)
}

func ErrMissingCredentials() *AppError {
	return New("AUTH_002", "Payment gateway credentials not configured", http.StatusBadGateway)
}

// ErrGateway carries the remote error message returned by the payment gateway.
func ErrGateway(remoteMessage string, err error) *AppError {
	return Wrap("GW_001", fmt.Sprintf("Payment gateway error: %s", remoteMessage), http.StatusBadGateway, err)
}

// ---- Orders (ORD) ----

func ErrOrderNotFound(reference string) *AppError {
	return New("ORD_001", fmt.Sprintf("order %s not found", reference), http.StatusNotFound)
}

func ErrDuplicateReference(reference string) *AppError {
	return New("ORD_002", fmt.Sprintf("order %s already exists", reference), http.StatusConflict)
}

// ---- Card payments (CARD) ----

func ErrPaymentRejected() *AppError {
	return New("CARD_001", "Card payment rejected", http.StatusPaymentRequired)
}

// ---- Webhook security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid webhook signature", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPersistence signals a transient local state update failure. The 5xx
// status tells the gateway the delivery was not acknowledged so it retries;
// the status-transition check makes the retry safe.
func ErrPersistence(err error) *AppError {
	return Wrap("SYS_002", "Order state update failed", http.StatusInternalServerError, err)
}
