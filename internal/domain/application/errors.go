package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("application not found")
	ErrInvalidState = errors.New("application is not pending")
	// ErrUpstream wraps blob store and datastore outages; callers may retry.
	ErrUpstream = errors.New("upstream storage unavailable")
)

// FieldErrors maps a form field name to every message raised for it.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) { f[field] = append(f[field], msg) }

func (f FieldErrors) Has(field string) bool { return len(f[field]) > 0 }

// Fields returns the failing field names in stable order.
func (f FieldErrors) Fields() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields.Fields(), ", "))
}

// Upstream tags err as a retryable storage failure.
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
