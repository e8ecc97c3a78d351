package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated indicates the action requires an active session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrCompareFull indicates the compare set already holds its maximum
	// number of products.
	ErrCompareFull = errors.New("compare list is full")
	// ErrOutOfStock indicates the product cannot be sold at all.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrInsufficientStock indicates the requested quantity exceeds the
	// available stock.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	// ErrNetwork indicates a remote store call did not complete; the
	// operation is safe to retry.
	ErrNetwork = errors.New("remote store unavailable")
)

// ValidationError carries per-field messages for a rejected form step.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PaymentError reports a gateway rejection with a human-readable reason.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}
