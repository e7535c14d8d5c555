// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"

	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
)

// Link is the exact downstream contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Link interface {
	EnsureConnected() bool
	WriteFloat(ref, fc string, v float64) error
}

// Writer delivers one scaled sample to the relay.
type Writer struct {
	mapping Mapping
	link    Link
}

// New creates a writer with an immutable mapping.
func New(mapping Mapping, link Link) (*Writer, error) {
	if len(mapping) == 0 {
		return nil, errors.New("writer: empty mapping")
	}
	if link == nil {
		return nil, errors.New("writer: link required")
	}
	return &Writer{mapping: mapping, link: link}, nil
}

// EnsureConnected primes the downstream link (used once at startup).
func (w *Writer) EnsureConnected() bool {
	return w.link.EnsureConnected()
}

// WriteAll writes the sample in mapping order.
// The link is reconnected first; a connect failure writes nothing.
// Fail-fast: the first write failure stops the batch and the remaining
// attributes are not attempted this cycle.
func (w *Writer) WriteAll(sample scale.Sample) (bool, string) {
	if !w.link.EnsureConnected() {
		return false, "connect failed"
	}

	for _, p := range w.mapping {
		if err := w.link.WriteFloat(p.Ref, p.FC, sample[p.Quantity]); err != nil {
			return false, writeErrorText(p, err)
		}
	}

	return true, ""
}

// writeErrorText names the failing reference and carries the relay error
// code through verbatim when the error exposes one.
func writeErrorText(p Point, err error) string {
	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return fmt.Sprintf("write %s FC=%s err=%d", p.Ref, p.FC, c.Code())
	}
	return fmt.Sprintf("write %s FC=%s err=%v", p.Ref, p.FC, err)
}
