package req

import (
	"fmt"
	"strconv"

	"github.com/xy-planning-network/hello"
)

// coerce converts raw into the value f's Type decodes into.
//
// Integers parse as base-10 decimals; anything else,
// including values overflowing an int, fails with [TypeMismatch].
func coerce(f Field, raw string) (any, error) {
	switch f.Type {
	case TypeString:
		return raw, nil

	case TypeInt, TypeOptionalInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, typeMismatch(f.Key(), fmt.Sprintf("%q is not a base-10 integer", raw))
		}

		if f.Type == TypeOptionalInt {
			return &n, nil
		}

		return n, nil

	default:
		return nil, fmt.Errorf("%w: cannot coerce a single value into %s", hello.ErrNotImplemented, f.Type)
	}
}

// zeroValue returns the value an absent, optional f decodes into.
func zeroValue(f Field) any {
	switch f.Type {
	case TypeInt:
		return 0
	case TypeOptionalInt:
		return (*int)(nil)
	default:
		return ""
	}
}
