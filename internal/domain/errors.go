package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrArtistNotFound       = errors.New("artist not found")
	ErrGenreNotFound        = errors.New("genre not found")
	ErrTrackNotFound        = errors.New("track not found")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrStreamRecordNotFound = errors.New("stream record not found")
	ErrNewsNotFound         = errors.New("news item not found")

	ErrForbidden       = errors.New("action not allowed for this account")
	ErrUnauthenticated = errors.New("authentication required")

	// ErrConflict signals that a concurrent modification was detected during a
	// multi-step operation. The whole operation was rolled back; the caller may
	// retry it from scratch.
	ErrConflict = errors.New("concurrent modification detected")
)

// ValidationError carries field-level constraint violations. It is surfaced to
// the caller verbatim and never retried.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error itself when at least one field failed, nil
// otherwise, so validators can end with `return v.ErrOrNil()`.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range fields {
		fmt.Fprintf(&b, "; %s: %s", f, e.Fields[f])
	}
	return b.String()
}
