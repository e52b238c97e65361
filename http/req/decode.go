package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/hello"
)

func newStructDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into a *Failure or a sentinel error.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are mismatches between the resolved values and the struct's fields.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", hello.ErrUnexpected, err)
	}

	// NOTE: MultiError is a map; walk it in order so the same input returns the same error.
	keys := make([]string, 0, len(pkgErrs))
	for k := range pkgErrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch err := pkgErrs[k].(type) {
		case schema.ConversionError:
			return typeMismatch(err.Key, fmt.Sprintf("cannot convert into %s", err.Type))

		case schema.EmptyFieldError:
			return missingRequired(err.Key)

		default:
			// NOTE: a struct field with a type no schema.Converter handles
			// only errors once a value for that field is set.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", hello.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", hello.ErrUnexpected, err)
		}
	}

	return fmt.Errorf("%w: %s", hello.ErrUnexpected, err)
}

// translateJSONError converts an error returned by *json.Decoder into a *Failure or a sentinel error.
func translateJSONError(err error) error {
	var (
		ourFault  *json.InvalidUnmarshalError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &ourFault):
		return fmt.Errorf("hello/http/req: %w: %s", hello.ErrBadAny, err)

	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = typeErr.Struct
		}

		return typeMismatch(field, fmt.Sprintf("cannot use JSON %s as %s", typeErr.Value, typeErr.Type))

	case errors.As(err, &syntaxErr):
		return malformedBody("invalid JSON at offset %d: %s", syntaxErr.Offset, syntaxErr)

	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return malformedBody("truncated JSON")

	default:
		return malformedBody("cannot decode JSON: %s", err)
	}
}
