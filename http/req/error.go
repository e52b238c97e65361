package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/hello"
)

// A Kind classifies what went wrong decoding a request.
type Kind int

const (
	// MissingRequired means a required field has no value and no default.
	MissingRequired Kind = iota + 1

	// TypeMismatch means a value cannot be converted into the type of its field.
	TypeMismatch

	// MalformedBody means the request body cannot be read as text or parsed as JSON.
	MalformedBody
)

func (k Kind) String() string {
	switch k {
	case MissingRequired:
		return "MissingRequired"
	case TypeMismatch:
		return "TypeMismatch"
	case MalformedBody:
		return "MalformedBody"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// A Failure is an issue with the data of a request,
// as opposed to an issue with the code decoding it.
type Failure struct {
	Kind   Kind   `json:"kind"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail"`
}

func (f *Failure) Error() string {
	if f.Field == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}

	return fmt.Sprintf("%s: field=%q: %s", f.Kind, f.Field, f.Detail)
}

// Unwrap maps the Kind to its sentinel error.
func (f *Failure) Unwrap() error {
	switch f.Kind {
	case MissingRequired:
		return hello.ErrMissingData
	case TypeMismatch:
		return hello.ErrNotValid
	case MalformedBody:
		return hello.ErrBadFormat
	default:
		return hello.ErrUnexpected
	}
}

func missingRequired(field string) *Failure {
	return &Failure{Kind: MissingRequired, Field: field, Detail: "required parameter is not present"}
}

func typeMismatch(field, detail string) *Failure {
	return &Failure{Kind: TypeMismatch, Field: field, Detail: detail}
}

func malformedBody(format string, args ...any) *Failure {
	return &Failure{Kind: MalformedBody, Detail: fmt.Sprintf(format, args...)}
}

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return hello.ErrNotValid }
