package auth

import (
	"errors"
	"fmt"
)

// IncorrectCredentialsMessage is the single message returned for every
// credential failure. Unknown username and wrong password must read
// identically so a caller cannot probe which accounts exist.
const IncorrectCredentialsMessage = "Incorrect username or password"

var (
	ErrInvalidCredentials = errors.New(IncorrectCredentialsMessage)
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// ValidationError describes a client-input problem. Field names the
// offending request field and maps to the response's location.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreError marks a credential-store fault. It maps to a server-fault
// response and is never folded into an invalid-credentials result.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("credential store: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
