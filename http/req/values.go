package req

// Values holds what [Parser.ParseParams] decoded, keyed by each Field's variable name.
//
// The accessors return the zero value for names not set or set to another type.
type Values map[string]any

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// OptionalInt returns nil when the parameter was absent and had no default.
func (v Values) OptionalInt(name string) *int {
	n, _ := v[name].(*int)
	return n
}

func (v Values) Map(name string) map[string]string {
	m, _ := v[name].(map[string]string)
	return m
}

func (v Values) MultiMap(name string) map[string][]string {
	m, _ := v[name].(map[string][]string)
	return m
}
