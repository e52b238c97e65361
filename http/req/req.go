package req

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/hello"
)

// DefaultMaxBodySize is the largest body, in bytes, a Parser reads by default (1MB).
const DefaultMaxBodySize = 1 << 20

// A Parser decodes a [Payload].
//
// A Parser holds configuration only and is safe for concurrent use.
type Parser struct {
	maxBodySize   int64
	strictJSON    bool
	structDecoder *schema.Decoder
}

// NewParser constructs a *Parser using the ParserOptFns passed in.
func NewParser(opts ...ParserOptFn) *Parser {
	p := &Parser{
		maxBodySize:   DefaultMaxBodySize,
		structDecoder: newStructDecoder(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ParseRaw reads the entire body as a UTF-8 string.
// ParseRaw does not parse the body any further.
//
// A body that is not valid UTF-8, too large, or already read fails with [MalformedBody].
func (p *Parser) ParseRaw(pl *Payload) (string, error) {
	b, err := pl.readBody(p.maxBodySize)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", malformedBody("body is not valid UTF-8")
	}

	return string(b), nil
}

// ParseBody decodes into a pointer the JSON data in the body.
//
// The declared content type must be JSON or left empty.
// Bad JSON, an empty body or data trailing the JSON value fail with [MalformedBody];
// a JSON value of the wrong type for its field fails with [TypeMismatch].
//
// ParseBody reads the entire body and it can't be read from again.
func (p *Parser) ParseBody(pl *Payload, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("hello/http/req: %w: ParseBody called with non-pointer %T", hello.ErrBadAny, ptr)
	}

	if !isJSON(pl.ContentType) {
		return malformedBody("unsupported content type %q, expected application/json", pl.ContentType)
	}

	b, err := pl.readBody(p.maxBodySize)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return malformedBody("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	if p.strictJSON {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(ptr); err != nil {
		return translateJSONError(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return malformedBody("unexpected data after JSON value")
	}

	return nil
}

// ParseParams resolves every Field of s from the parameters of pl.
//
// Fields resolve in order and the first Failure returns:
//
//   - [TypeMap] and [TypeMultiMap] Fields collect all parameters as they are.
//   - A present, non-empty value is coerced into the Field's Type.
//   - A value that is absent, or empty when the Field has a Default or is an integer,
//     takes the Default; failing that, a Required Field fails with [MissingRequired].
//   - Otherwise a string resolves to "" and an [OptionalInt] to nil,
//     while an [Int] fails with [TypeMismatch] as it cannot be absent.
func (p *Parser) ParseParams(pl *Payload, s Schema) (Values, error) {
	return resolve(pl, s, false)
}

// Bind resolves the Fields of s like ParseParams and populates the struct structPtr points to,
// matching each Field's variable name to the struct field's "schema" tag or Go name.
//
// Unlike ParseParams, an absent [Int] that is not Required leaves its struct field at zero.
// structPtr ought to point to a zero value: struct fields without a value are not touched.
func (p *Parser) Bind(pl *Payload, s Schema, structPtr any) error {
	t := reflect.TypeOf(structPtr)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("hello/http/req: %w: Bind called with %T, not a pointer to a struct", hello.ErrBadAny, structPtr)
	}

	vals, err := resolve(pl, s, true)
	if err != nil {
		return err
	}

	src := make(map[string][]string, len(s.fields))
	for _, f := range s.fields {
		switch v := vals[f.Var].(type) {
		case string:
			src[f.Var] = []string{v}
		case int:
			src[f.Var] = []string{strconv.Itoa(v)}
		case *int:
			if v != nil {
				src[f.Var] = []string{strconv.Itoa(*v)}
			}
		}
	}

	if err := p.structDecoder.Decode(structPtr, src); err != nil {
		return fmt.Errorf("hello/http/req: failed binding params onto %T: %w", structPtr, translateDecoderError(err))
	}

	return nil
}

// resolve applies the rules of ParseParams.
// zeroAbsent resolves an absent [Int] to 0 instead of failing.
func resolve(pl *Payload, s Schema, zeroAbsent bool) (Values, error) {
	vals := make(Values, len(s.fields))
	for _, f := range s.fields {
		switch f.Type {
		case TypeMap:
			m := make(map[string]string, len(pl.Params))
			for k, v := range pl.Params {
				m[k] = ""
				if len(v) > 0 {
					m[k] = v[0]
				}
			}
			vals[f.Var] = m
			continue

		case TypeMultiMap:
			m := make(map[string][]string, len(pl.Params))
			for k, v := range pl.Params {
				m[k] = append([]string(nil), v...)
			}
			vals[f.Var] = m
			continue
		}

		raw, present := lookup(pl, f.Key())
		if present && raw == "" && (f.HasDefault || f.Type != TypeString) {
			present = false
		}

		switch {
		case present:
			v, err := coerce(f, raw)
			if err != nil {
				return nil, err
			}
			vals[f.Var] = v

		case f.HasDefault:
			v, err := coerce(f, f.Default)
			if err != nil {
				return nil, err
			}
			vals[f.Var] = v

		case f.Required:
			return nil, missingRequired(f.Key())

		case f.Type == TypeInt && !zeroAbsent:
			return nil, typeMismatch(f.Key(), "no value for an int; make it optional or give it a default")

		default:
			vals[f.Var] = zeroValue(f)
		}
	}

	return vals, nil
}

// lookup retrieves the first value set for the exact key.
func lookup(pl *Payload, key string) (string, bool) {
	vals, ok := pl.Params[key]
	if !ok || len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

// isJSON reports whether ct declares a JSON media type.
// An empty ct is taken as JSON.
func isJSON(ct string) bool {
	if ct == "" {
		return true
	}

	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}

	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
