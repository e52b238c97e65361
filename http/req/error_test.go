package req_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/req"
)

func TestFailureError(t *testing.T) {
	for _, tc := range []struct {
		name     string
		failure  *req.Failure
		expected string
	}{
		{"With-Field", &req.Failure{Kind: req.TypeMismatch, Field: "age", Detail: "bad"}, `TypeMismatch: field="age": bad`},
		{"Without-Field", &req.Failure{Kind: req.MalformedBody, Detail: "empty body"}, "MalformedBody: empty body"},
		{"Zero-Value", &req.Failure{}, "Unknown: "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.failure.Error())
		})
	}
}

func TestFailureUnwrap(t *testing.T) {
	for _, tc := range []struct {
		kind     req.Kind
		expected error
	}{
		{req.MissingRequired, hello.ErrMissingData},
		{req.TypeMismatch, hello.ErrNotValid},
		{req.MalformedBody, hello.ErrBadFormat},
		{req.Kind(0), hello.ErrUnexpected},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			// Arrange
			var err error = &req.Failure{Kind: tc.kind}

			// Act
			var actual *req.Failure
			ok := errors.As(err, &actual)

			// Assert
			require.True(t, ok)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestFailureMarshalJSON(t *testing.T) {
	// Arrange
	f := &req.Failure{Kind: req.MissingRequired, Field: "username", Detail: "required parameter is not present"}

	// Act
	b, err := json.Marshal(f)

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"kind":"MissingRequired","field":"username","detail":"required parameter is not present"}`, string(b))

	// Arrange
	f = &req.Failure{Kind: req.MalformedBody, Detail: "empty body"}

	// Act
	b, err = json.Marshal(f)

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"kind":"MalformedBody","detail":"empty body"}`, string(b))
}

func TestValidationErrorsError(t *testing.T) {
	// Arrange
	var v req.ValidationErrors

	// Act
	actual := v.Error()

	// Assert
	require.Zero(t, actual)

	// Arrange
	v = append(
		v,
		req.ValidationError{
			Field: "fields[0].var",
			Rule:  "required; string",
		},
		req.ValidationError{
			Field: "fields[1].default",
			Got:   "x",
			Rule:  "coercible=int; string",
		},
	)

	expected := strings.Join([]string{
		`field="fields[0].var" rule="required; string" got="<nil>"`,
		`field="fields[1].default" rule="coercible=int; string" got="x"`,
	}, "\n")

	// Act
	actual = v.Error()

	// Assert
	require.Equal(t, expected, actual)
}

func TestValidationErrorsMarshalJSON(t *testing.T) {
	// Arrange
	var v req.ValidationErrors

	// Act
	actual, err := json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "{}", string(actual))

	// Arrange
	v = append(v, req.ValidationError{
		Field: "fields[0].var",
		Rule:  "required; string",
		Got:   "",
	})

	expected := `{"validationErrors":[{"field":"fields[0].var","got":"","rule":"required; string"}]}`

	// Act
	actual, err = json.Marshal(v)

	// Assert
	require.Nil(t, err)
	require.Equal(t, expected, string(actual))
}

func TestValidationErrorsUnwrap(t *testing.T) {
	require.ErrorIs(t, req.ValidationErrors{}, hello.ErrNotValid)
}
