package dto

import (
	"bytes"
	"strings"
)

// Result is the body of every JSON endpoint: {success, message, data?}.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a successful result.
func OK(message string, data any) Result {
	return Result{Success: true, Message: message, Data: data}
}

// Fail builds a failed result with a stable machine-readable code.
func Fail(code, message string) Result {
	return Result{Success: false, Code: code, Message: message}
}

// Quantity keeps the raw text of a quantity so that validation happens in the use case.
// It accepts a JSON number (480.5) or a JSON string ("480.5").
type Quantity string

// UnmarshalJSON stores the literal without interpreting it.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	*q = Quantity(strings.Trim(string(b), `"`))
	return nil
}
