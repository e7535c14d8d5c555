// internal/bridge/builder.go
package bridge

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aymen99tn/modbus-rpi-opta/internal/config"
	"github.com/aymen99tn/modbus-rpi-opta/internal/poller"
	pmodbus "github.com/aymen99tn/modbus-rpi-opta/internal/poller/modbus"
	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
	"github.com/aymen99tn/modbus-rpi-opta/internal/status"
	"github.com/aymen99tn/modbus-rpi-opta/internal/writer"
	"github.com/aymen99tn/modbus-rpi-opta/internal/writer/mms"
)

// registerBase is the upstream block base address.
const registerBase uint16 = 0

// Build wires the bridge from config and returns it with a closer for
// both links. Neither link is dialed here; connection is established by
// the scheduler's initial attempt.
func Build(cfg config.Config, log zerolog.Logger) (*Bridge, func() error, error) {
	b := cfg.Bridge

	source, err := pmodbus.New(pmodbus.Config{
		Endpoint: b.Source.Endpoint,
		UnitID:   b.Source.UnitID,
		Timeout:  time.Duration(b.Source.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	reader, err := poller.New(poller.Config{
		Address:  registerBase,
		Quantity: uint16(scale.NumQuantities),
	}, source)
	if err != nil {
		return nil, nil, err
	}

	relay, err := mms.New(mms.Config{
		Endpoint: b.Relay.Endpoint,
		Timeout:  time.Duration(b.Relay.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	w, err := writer.New(writer.DefaultMapping, relay)
	if err != nil {
		return nil, nil, err
	}

	pub, err := status.NewPublisher(b.Mirror.Path)
	if err != nil {
		return nil, nil, err
	}

	br, err := New(Config{
		Interval:   time.Duration(b.Poll.IntervalMs) * time.Millisecond,
		RetryDelay: time.Duration(b.Poll.RetryMs) * time.Millisecond,
	}, source, reader, w, pub, log)
	if err != nil {
		return nil, nil, err
	}

	closeAll := func() error {
		var last error
		if err := relay.Close(); err != nil {
			last = err
		}
		if err := source.Close(); err != nil {
			last = err
		}
		return last
	}

	return br, closeAll, nil
}
