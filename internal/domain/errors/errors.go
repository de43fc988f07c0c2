package errors

import (
	"fmt"
	"net/http"
	"time"

	"rental/internal/errors"

	"github.com/google/uuid"
)

// dateLayout is the ISO-8601 calendar date format used in error details.
const dateLayout = "2006-01-02"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Property-related errors
	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Latitude must be within [-90,90] and longitude within [-180,180]",
		"",
	)

	ErrLocationUnresolved = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_UNRESOLVED",
		"Could not resolve the place to coordinates",
		"",
	)

	// Booking-related errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrBookingOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"BOOKING_OWNERSHIP_VIOLATION",
		"Only the renter who made this booking may change it",
		"",
	)

	ErrBookingBusy = NewBaseError(
		http.StatusServiceUnavailable,
		"BOOKING_BUSY",
		"The property calendar is busy, please retry",
		"",
	)

	// Review-related errors
	ErrReviewRequiresBooking = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_REQUIRES_BOOKING",
		"User must have a booking before leaving a review",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// InvalidRangeError reports an inverted or unparseable date range.
type InvalidRangeError struct {
	Start  string
	End    string
	Reason string
}

// NewInvertedRangeError reports a range whose start falls after its end.
func NewInvertedRangeError(start, end time.Time) *InvalidRangeError {
	return &InvalidRangeError{
		Start:  start.Format(dateLayout),
		End:    end.Format(dateLayout),
		Reason: "start date must be on or before end date",
	}
}

// NewUnparseableDateError reports a date value that is not YYYY-MM-DD.
func NewUnparseableDateError(field, value string) *InvalidRangeError {
	return &InvalidRangeError{
		Reason: fmt.Sprintf("%s %q is not a valid YYYY-MM-DD date", field, value),
	}
}

func (e *InvalidRangeError) Error() string {
	return "invalid date range: " + e.Details()
}

func (e *InvalidRangeError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *InvalidRangeError) ErrorCode() string {
	return "INVALID_DATE_RANGE"
}

func (e *InvalidRangeError) Message() string {
	return "Invalid date range"
}

func (e *InvalidRangeError) Details() string {
	if e.Start == "" && e.End == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s (start %s, end %s)", e.Reason, e.Start, e.End)
}

// OverlapError reports that a requested stay collides with an existing booking.
// It carries the conflicting booking's dates so the caller can pick others.
type OverlapError struct {
	PropertyID         uuid.UUID
	ConflictingBooking uuid.UUID
	ConflictStart      time.Time
	ConflictEnd        time.Time
	RequestedStart     time.Time
	RequestedEnd       time.Time
}

func (e *OverlapError) Error() string {
	return "booking overlap: " + e.Details()
}

func (e *OverlapError) HTTPCode() int {
	return http.StatusConflict
}

func (e *OverlapError) ErrorCode() string {
	return "BOOKING_OVERLAP"
}

func (e *OverlapError) Message() string {
	return "The requested dates conflict with an existing booking"
}

func (e *OverlapError) Details() string {
	if e.ConflictStart.IsZero() {
		return fmt.Sprintf("requested %s..%s overlaps an existing booking",
			e.RequestedStart.Format(dateLayout), e.RequestedEnd.Format(dateLayout))
	}

	return fmt.Sprintf("requested %s..%s overlaps booked %s..%s",
		e.RequestedStart.Format(dateLayout), e.RequestedEnd.Format(dateLayout),
		e.ConflictStart.Format(dateLayout), e.ConflictEnd.Format(dateLayout))
}

// GeocodeUnavailableError reports that a place could not be resolved.
// Search treats it as degraded mode rather than a failure.
type GeocodeUnavailableError struct {
	PlaceID string
	Cause   error
}

func (e *GeocodeUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("geocode unavailable for place %q", e.PlaceID)
	}

	return fmt.Sprintf("geocode unavailable for place %q: %v", e.PlaceID, e.Cause)
}

func (e *GeocodeUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *GeocodeUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *GeocodeUnavailableError) ErrorCode() string {
	return "GEOCODE_UNAVAILABLE"
}

func (e *GeocodeUnavailableError) Message() string {
	return "Location lookup is currently unavailable"
}

func (e *GeocodeUnavailableError) Details() string {
	return e.PlaceID
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
