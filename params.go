package craftgate

import (
	"net/url"
	"strings"
)

// Parameter is a single query parameter. Parameter order is preserved
// end to end and determines query-string order.
type Parameter struct {
	Key   string
	Value string
}

// Parameterizable is implemented by request types that can be flattened
// into an ordered list of query parameters.
type Parameterizable interface {
	ToParameters() []Parameter
}

// Query builds the query string for p: "?" followed by "key=value"
// pairs joined with "&", in parameter order. Values are percent-encoded
// as UTF-8; keys are emitted as-is. An empty parameter list yields
// exactly "?".
func Query(p Parameterizable) string {
	var b strings.Builder
	b.WriteByte('?')
	for i, param := range p.ToParameters() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(param.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
