package cfg

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrUnsupportedType indicates a value type other than number or string
	// was requested.
	ErrUnsupportedType = errors.New("cfg: unsupported value type")

	// ErrMissingField indicates a required key is absent from a cfg file.
	ErrMissingField = errors.New("cfg: missing field")

	// ErrInvalidValue indicates a value cannot be represented in the cfg
	// format.
	ErrInvalidValue = errors.New("cfg: invalid value")

	// ErrSyntax indicates cfg text could not be parsed into statements.
	ErrSyntax = errors.New("cfg: syntax error")
)

// UnsupportedTypeError carries the requested type.
type UnsupportedTypeError struct {
	Type ValueType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported cfg value type %q", string(e.Type))
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// MissingFieldError is returned when a mapped key has no value. Path is the
// originating file when known.
type MissingFieldError struct {
	Key  string
	Path string
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("No '%s' value specified", e.Key)
	if e.Path != "" {
		msg += fmt.Sprintf(" in %q", e.Path)
	}
	return msg
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// IsMissingField reports whether err is (or wraps) a missing-field condition.
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// InvalidValueError names the field whose value would corrupt the file.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: value %q contains a double quote or line break", e.Field, e.Value)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// SyntaxError reports a malformed statement.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
