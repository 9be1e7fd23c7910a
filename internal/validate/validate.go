// Package validate checks raw form input before it reaches the roster.
// Validation is pure: it never touches the store and never logs.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel kinds. Match with errors.Is against a returned *Error.
var (
	ErrEmptyField     = errors.New("empty field")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrNonPositiveAge = errors.New("non-positive age")
)

// Field names used in Error.Field.
const (
	FieldName = "name"
	FieldAge  = "age"
)

// Input is a name/age pair that passed validation.
type Input struct {
	Name string
	Age  int
}

// Error describes why a submission was rejected. Title and Message are
// what the error dialog shows to the user.
type Error struct {
	Kind    error
	Field   string
	Title   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func emptyField(field string) *Error {
	return &Error{
		Kind:    ErrEmptyField,
		Field:   field,
		Title:   "Invalid input",
		Message: "Please enter a valid name and age (non-empty values).",
	}
}

// ParseAge parses a whole number of years. Surrounding whitespace is ignored.
func ParseAge(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, emptyField(FieldAge)
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{
			Kind:    ErrInvalidNumber,
			Field:   FieldAge,
			Title:   "Invalid age",
			Message: "Please enter a whole number of years.",
		}
	}
	if age < 1 {
		return 0, &Error{
			Kind:    ErrNonPositiveAge,
			Field:   FieldAge,
			Title:   "Invalid age",
			Message: "Please enter a valid age (> 0).",
		}
	}
	return age, nil
}

// Validate accepts or rejects a raw submission. Empty fields are reported
// before any numeric problem with the age.
func Validate(nameRaw, ageRaw string) (Input, error) {
	name := strings.TrimSpace(nameRaw)
	if name == "" {
		return Input{}, emptyField(FieldName)
	}
	age, err := ParseAge(ageRaw)
	if err != nil {
		return Input{}, err
	}
	return Input{Name: name, Age: age}, nil
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
