// Package errs defines the error taxonomy shared across services and
// handlers. Sentinel values let higher layers distinguish failure modes with
// errors.Is and translate them into HTTP status codes: ErrConflict -> 409,
// ErrNotFound -> 404, ErrUnauthorized and ErrInvalidToken -> 401, and
// ForbiddenError -> 403.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict is returned when an operation would violate a uniqueness
// invariant (duplicate email, role name, permission name, or relation
// assignment) or when a delete is blocked by existing references.
var ErrConflict = errors.New("conflict")

// ErrNotFound is returned when a referenced id or name does not resolve to a
// live record.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned for credential mismatches at login. It is
// deliberately indistinguishable from "user not found" so that failed logins
// do not leak account existence.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrInvalidToken is returned for malformed, tampered, or expired session
// tokens. Terminal; the client must re-authenticate.
var ErrInvalidToken = errors.New("invalid token")

// ForbiddenError reports an access-control gate failure together with the
// requirement names the caller would need to satisfy it.
type ForbiddenError struct {
	Reason  string
	Missing []string
}

func (e *ForbiddenError) Error() string {
	if len(e.Missing) == 0 {
		return "access denied: " + e.Reason
	}
	return fmt.Sprintf("access denied: %s: %s", e.Reason, strings.Join(e.Missing, ", "))
}

// Forbidden builds a ForbiddenError.
func Forbidden(reason string, missing ...string) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Missing: missing}
}

// IsForbidden reports whether err is a gate failure.
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}
