package user

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidCredentials = "invalidCredentials"
	CodeEmailTaken         = "emailTaken"
)

type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidCredentialsError() error {
	return &AuthError{
		Code:    CodeInvalidCredentials,
		Message: "invalid email or password",
	}
}

func NewEmailTakenError() error {
	return &AuthError{
		Code:    CodeEmailTaken,
		Message: "email already registered",
	}
}

// ErrCode extracts the auth error code, or "" for foreign errors.
func ErrCode(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
