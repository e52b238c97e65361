package req

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/xy-planning-network/hello"
)

// A Type is the closed set of types a [Field] decodes into.
type Type int

const (
	// TypeString decodes into a string.
	TypeString Type = iota + 1

	// TypeInt decodes into an int.
	TypeInt

	// TypeOptionalInt decodes into an *int, nil when absent.
	TypeOptionalInt

	// TypeMap collects every parameter into a map[string]string, keeping the first value of each.
	TypeMap

	// TypeMultiMap collects every parameter into a map[string][]string.
	TypeMultiMap
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeOptionalInt:
		return "*int"
	case TypeMap:
		return "map[string]string"
	case TypeMultiMap:
		return "map[string][]string"
	default:
		return "unknown"
	}
}

func (t Type) isMap() bool { return t == TypeMap || t == TypeMultiMap }

// A Field describes one value to decode out of a [Payload].
type Field struct {
	// Var is the name the decoded value is stored under.
	Var string `json:"var" validate:"required,printascii"`

	// Name is the parameter to bind to. When empty, Var is the parameter name.
	Name string `json:"name,omitempty" validate:"omitempty,printascii"`

	Type       Type   `json:"type" validate:"oneof=1 2 3 4 5"`
	Required   bool   `json:"required"`
	Default    string `json:"default,omitempty"`
	HasDefault bool   `json:"hasDefault"`
}

// Key returns the parameter name f binds to.
func (f Field) Key() string {
	if f.Name != "" {
		return f.Name
	}

	return f.Var
}

// A FieldOpt configures a Field.
type FieldOpt func(*Field)

// Default sets the raw value to use when the parameter is absent or empty.
// The raw value is coerced like any value from a request.
func Default(raw string) FieldOpt {
	return func(f *Field) {
		f.Default = raw
		f.HasDefault = true
	}
}

// Named binds the Field to the named parameter instead of its variable name.
func Named(name string) FieldOpt {
	return func(f *Field) {
		f.Name = name
	}
}

// Required marks the Field as one that must have a value.
func Required() FieldOpt {
	return func(f *Field) {
		f.Required = true
	}
}

// String describes a string Field stored under v.
func String(v string, opts ...FieldOpt) Field { return newField(v, TypeString, opts) }

// Int describes an int Field stored under v.
//
// An Int with no value has nothing to decode into:
// unless it is given a Default, [Parser.ParseParams] fails with [TypeMismatch] when the parameter is absent.
// Use [OptionalInt] for parameters that may be left out.
func Int(v string, opts ...FieldOpt) Field { return newField(v, TypeInt, opts) }

// OptionalInt describes an *int Field stored under v.
func OptionalInt(v string, opts ...FieldOpt) Field { return newField(v, TypeOptionalInt, opts) }

// Map describes a Field stored under v collecting every parameter, with the first value of each.
func Map(v string) Field { return newField(v, TypeMap, nil) }

// MultiMap describes a Field stored under v collecting every parameter with all its values.
func MultiMap(v string) Field { return newField(v, TypeMultiMap, nil) }

func newField(v string, t Type, opts []FieldOpt) Field {
	f := Field{Var: v, Type: t}
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// A Schema is the ordered set of Fields a [Payload] decodes into.
//
// Build a Schema once, when setting up routes, and share it across requests.
type Schema struct {
	fields []Field
}

// NewSchema constructs a Schema from fields, checking each is well configured.
//
// A bad configuration returns an error wrapping [hello.ErrBadConfig] and [ValidationErrors].
func NewSchema(fields ...Field) (Schema, error) {
	if err := validateFields(fields); err != nil {
		return Schema{}, fmt.Errorf("%w: %w", hello.ErrBadConfig, err)
	}

	return Schema{fields: append([]Field(nil), fields...)}, nil
}

// MustSchema is like NewSchema but panics on a bad configuration.
func MustSchema(fields ...Field) Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Fields returns a copy of the Fields in s.
func (s Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// SchemaOf derives a Schema from the exported fields of the struct structPtr points to.
//
// The variable name of each field is the first part of its "schema" struct tag,
// or the Go field name when there is none; a "schema" tag of "-" skips the field.
// A "bind" struct tag configures the rest as a comma separated list:
//
//	Username string `schema:"username" bind:"required,default=guest"`
//	Age      int    `schema:"age" bind:"name=user_age"`
//
// string fields become [TypeString], int fields [TypeInt] and *int fields [TypeOptionalInt].
// Any other field type returns an error wrapping [hello.ErrNotImplemented].
func SchemaOf(structPtr any) (Schema, error) {
	t := reflect.TypeOf(structPtr)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return Schema{}, fmt.Errorf("%w: SchemaOf called with %T, not a pointer to a struct", hello.ErrBadAny, structPtr)
	}

	t = t.Elem()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		alias := strings.SplitN(sf.Tag.Get("schema"), ",", 2)[0]
		if alias == "-" {
			continue
		}

		if alias == "" {
			alias = sf.Name
		}

		var ft Type
		switch {
		case sf.Type.Kind() == reflect.String:
			ft = TypeString
		case sf.Type.Kind() == reflect.Int:
			ft = TypeInt
		case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Int:
			ft = TypeOptionalInt
		default:
			return Schema{}, fmt.Errorf("%w: field %s has unsupported type %s", hello.ErrNotImplemented, sf.Name, sf.Type)
		}

		f, err := parseBindTag(alias, ft, sf.Tag.Get("bind"))
		if err != nil {
			return Schema{}, fmt.Errorf("%w: field %s: %s", hello.ErrBadConfig, sf.Name, err)
		}

		fields = append(fields, f)
	}

	return NewSchema(fields...)
}

// parseBindTag reads the options of a "bind" struct tag.
func parseBindTag(v string, t Type, tag string) (Field, error) {
	var opts []FieldOpt
	if tag == "" {
		return newField(v, t, opts), nil
	}

	for _, part := range strings.Split(tag, ",") {
		key, val, hasVal := strings.Cut(part, "=")
		switch {
		case key == "required" && !hasVal:
			opts = append(opts, Required())
		case key == "default" && hasVal:
			opts = append(opts, Default(val))
		case key == "name" && hasVal && val != "":
			opts = append(opts, Named(val))
		default:
			return Field{}, fmt.Errorf("unknown bind option %q", part)
		}
	}

	return newField(v, t, opts), nil
}
