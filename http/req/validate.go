package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// fieldValidator checks Fields when constructing a Schema.
// A *v10.Validate caches struct info and is safe for concurrent use.
var fieldValidator = newValidator()

type validator struct {
	valid *v10.Validate
}

// fieldSet wraps the Fields of a Schema for validating them as one.
type fieldSet struct {
	Fields []Field `json:"fields" validate:"unique=Var,dive"`
}

// newValidator constructs a validator, which applies default configuration.
func newValidator() validator {
	v := v10.New()
	v.RegisterStructValidation(validateFieldRules, Field{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			name = ""
		}

		return name
	})

	return validator{v}
}

// validateFields checks the "validate" struct tags and the rules between the parts of each Field.
func validateFields(fields []Field) error {
	return fieldValidator.validate(&fieldSet{Fields: fields})
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var validateErrs ValidationErrors
	for _, ve := range errs {
		field := ve.Namespace()

		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		rule := ve.Tag()
		if ve.Param() != "" {
			rule += "=" + ve.Param()
		}
		rule += "; " + ve.Type().String()

		validateErrs = append(validateErrs, ValidationError{
			Field: field,
			Got:   ve.Value(),
			Rule:  rule,
		})
	}

	return validateErrs
}

// validateFieldRules checks the parts of a Field agree with one another:
// map Fields take neither Required nor Default,
// and a Default must coerce into the Field's Type.
func validateFieldRules(sl v10.StructLevel) {
	f, ok := sl.Current().Interface().(Field)
	if !ok {
		return
	}

	if f.Type.isMap() {
		if f.Required {
			sl.ReportError(f.Required, "required", "Required", "nomap", "")
		}

		if f.HasDefault {
			sl.ReportError(f.Default, "default", "Default", "nomap", "")
		}

		return
	}

	if !f.HasDefault {
		return
	}

	if _, err := coerce(f, f.Default); err != nil {
		sl.ReportError(f.Default, "default", "Default", "coercible", f.Type.String())
	}
}
