package hello

import "net/url"

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

// Mask replaces every value set for key in vals with [LogMaskVal].
// Multiple values squash into one.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}
