package cm

import (
	"fmt"
	"strings"
)

// Method selects the predictor used for compression. The method is not
// stored in the compressed stream.
type Method byte

// Supported methods. The zero value selects the default APM method.
const (
	MethodAPM Method = iota
	MethodStateMap
	MethodOrder0
	MethodCount
)

var methodNames = [...]string{
	MethodAPM:      "apm",
	MethodStateMap: "statemap",
	MethodOrder0:   "order0",
	MethodCount:    "count",
}

// Methods lists all supported methods.
var Methods = []Method{MethodAPM, MethodStateMap, MethodOrder0, MethodCount}

// String returns the name of the method.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", byte(m))
}

// Verify checks whether the method is supported.
func (m Method) Verify() error {
	if int(m) >= len(methodNames) {
		return fmt.Errorf("cm: unsupported method %d", byte(m))
	}
	return nil
}

// ParseMethod converts a method name into a Method. Case is ignored.
func ParseMethod(s string) (m Method, err error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, name := range methodNames {
		if name == t {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("cm: unknown method %q", s)
}

// NewPredictor creates a fresh predictor for the method.
func NewPredictor(m Method) (p Predictor, err error) {
	switch m {
	case MethodAPM:
		return NewAPMPredictor(), nil
	case MethodStateMap:
		return NewStateMapPredictor(), nil
	case MethodOrder0:
		return NewOrder0Predictor(), nil
	case MethodCount:
		return NewCountPredictor(), nil
	}
	return nil, m.Verify()
}
