package booking

import (
	"errors"
	"fmt"
)

// Error codes for expected business conditions. Handlers map these to HTTP
// statuses; none of them is fatal.
const (
	CodeInvalidDateRange = "invalidDateRange"
	CodeCarUnavailable   = "carUnavailable"
	CodeStorage          = "storageError"
)

type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewInvalidDateRangeError(msg string) error {
	return &BookingError{
		Code:    CodeInvalidDateRange,
		Message: msg,
	}
}

func NewCarUnavailableError(msg string) error {
	return &BookingError{
		Code:    CodeCarUnavailable,
		Message: msg,
	}
}

func NewStorageError(err error) error {
	return &BookingError{
		Code:    CodeStorage,
		Message: "booking storage failed",
		Err:     err,
	}
}

// ErrCode extracts the booking error code, or "" for foreign errors.
func ErrCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
