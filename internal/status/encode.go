// internal/status/encode.go
package status

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
)

// timeLayout is local time, second precision.
const timeLayout = "2006-01-02T15:04:05"

// EscapeErrorText makes untrusted error text safe to embed in the mirror:
// double quotes become single quotes, line breaks collapse to spaces.
func EscapeErrorText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteByte('\'')
		case '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Encode renders a snapshot as the mirror JSON document.
// Key order and fixed 3-decimal float formatting are part of the dashboard
// contract. No IO. No side effects.
func Encode(s Snapshot) []byte {
	var b bytes.Buffer

	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"ts\": \"%s\",\n", s.At.Format(timeLayout))
	fmt.Fprintf(&b, "  \"mms_ok\": %t,\n", s.MMSOK)
	fmt.Fprintf(&b, "  \"mms_error\": \"%s\",\n", EscapeErrorText(s.MMSError))

	for q := scale.Quantity(0); q < scale.NumQuantities; q++ {
		fmt.Fprintf(&b, "  \"%s\": %.3f", q.Key(), s.Sample[q])
		if q < scale.NumQuantities-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	return b.Bytes()
}
