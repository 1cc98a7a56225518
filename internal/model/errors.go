package model

import "fmt"

// ValidationError reports an input record that failed a range or shape check
// before it reached a calculation. Calculations themselves never produce
// errors; degenerate arithmetic is absorbed by epsilon substitution.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func errPositive(field string) error {
	return &ValidationError{Field: field, Message: "must be greater than zero"}
}

func errNonNegative(field string) error {
	return &ValidationError{Field: field, Message: "must not be negative"}
}

func errLength(field string, want int) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("must have exactly %d entries", want)}
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
