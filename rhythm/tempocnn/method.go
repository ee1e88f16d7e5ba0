package tempocnn

import (
	"golang.org/x/text/cases"
)

// Method selects how local tempo estimates are reduced to a global tempo.
type Method string

// Supported aggregation methods.
const (
	MethodMean     Method = "mean"
	MethodMedian   Method = "median"
	MethodMajority Method = "majority"
)

// Methods lists the supported aggregation methods in documentation order.
func Methods() []Method {
	return []Method{MethodMean, MethodMedian, MethodMajority}
}

// ParseMethod resolves a method name case-insensitively.
// Unknown names fail with [ErrConfiguration].
func ParseMethod(name string) (Method, error) {
	folded := Method(cases.Fold().String(name))
	switch folded {
	case MethodMean, MethodMedian, MethodMajority:
		return folded, nil
	default:
		return "", configError("unsupported aggregation method %q", name)
	}
}

// String returns the canonical lower-case name.
func (m Method) String() string { return string(m) }

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Method can be bound
// directly to flags (flag.TextVar) and decoded from YAML or JSON.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
