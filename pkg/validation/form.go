package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Messages shown to the user when a form is rejected.
const (
	MsgRequiredFields    = "Please fill all required fields"
	MsgContributionTotal = "Total contribution percentage must equal 100%%. Current total: %v%%"
)

// Error is a rejected form submission. Message is safe to show to the user.
type Error struct {
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// IsValidationError reports whether err wraps an *Error.
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// Field is a named form value checked by Required.
type Field struct {
	Name  string
	Value string
}

// Required returns an *Error listing every field whose value is blank.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &Error{Message: MsgRequiredFields, Fields: missing}
}

// Failf builds an *Error with a formatted message.
func Failf(format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
