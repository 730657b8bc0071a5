package auth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// signupFields are validated in declaration order; the first failing
// check wins and later stages never run.
var signupFields = []string{"username", "password"}

// MinUsernameLength is the minimum username length accepted at signup.
const MinUsernameLength = 1

// ValidateSignup runs the staged signup validation over a decoded JSON
// body: required fields, string typing, surrounding whitespace, then
// length bounds. It is pure and touches no store. On success it returns
// the validated username and password ready for the uniqueness check.
func ValidateSignup(body map[string]json.RawMessage) (username, password string, verr *ValidationError) {
	// 1. Required fields
	for _, field := range signupFields {
		if _, ok := body[field]; !ok {
			return "", "", &ValidationError{Message: "Missing field", Field: field}
		}
	}

	// 2. Both fields must be JSON strings
	values := make(map[string]string, len(signupFields))
	for _, field := range signupFields {
		var s string
		if err := json.Unmarshal(body[field], &s); err != nil {
			return "", "", &ValidationError{
				Message: "Incorrect field type: expected string",
				Field:   field,
			}
		}
		values[field] = s
	}

	// 3. No surrounding whitespace. Rejecting instead of trimming keeps a
	// stray spacebar hit from locking someone out later.
	for _, field := range signupFields {
		if strings.TrimSpace(values[field]) != values[field] {
			return "", "", &ValidationError{
				Message: "Cannot start or end with whitespace",
				Field:   field,
			}
		}
	}

	// 4. Length bounds
	if len(values["username"]) < MinUsernameLength {
		return "", "", &ValidationError{
			Message: fmt.Sprintf("Must be at least %d characters long", MinUsernameLength),
			Field:   "username",
		}
	}
	if verr := ValidatePasswordLength(values["password"], "password"); verr != nil {
		return "", "", verr
	}

	return values["username"], values["password"], nil
}

// ValidatePasswordLength checks the signup password bounds for the named
// field. The password-change flow reuses it for new passwords.
func ValidatePasswordLength(password, field string) *ValidationError {
	if len(password) < MinPasswordLength {
		return &ValidationError{
			Message: fmt.Sprintf("Must be at least %d characters long", MinPasswordLength),
			Field:   field,
		}
	}
	if len(password) > MaxPasswordLength {
		return &ValidationError{
			Message: fmt.Sprintf("Must be at most %d characters long", MaxPasswordLength),
			Field:   field,
		}
	}
	return nil
}
