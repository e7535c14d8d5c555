// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
)

// Client abstracts the upstream Modbus operation the reader needs.
// The reader depends on geometry only.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
}

// Config is the read geometry.
type Config struct {
	Address  uint16
	Quantity uint16
}

// Reader performs one register-block read per cycle.
// It requires an already-open link; reconnecting is not its job.
type Reader struct {
	cfg    Config
	client Client
}

// New creates a reader with immutable geometry.
func New(cfg Config, client Client) (*Reader, error) {
	if cfg.Quantity == 0 {
		return nil, errors.New("poller: quantity must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Reader{cfg: cfg, client: client}, nil
}

// ReadFrame reads the full block. All-or-nothing: any response with a
// register count other than the configured quantity is an error, never a
// partial frame.
func (r *Reader) ReadFrame() (Frame, error) {
	regs, err := r.client.ReadHoldingRegisters(r.cfg.Address, r.cfg.Quantity)
	if err != nil {
		return nil, err
	}
	if len(regs) != int(r.cfg.Quantity) {
		return nil, fmt.Errorf("poller: short frame: got=%d want=%d", len(regs), r.cfg.Quantity)
	}
	return Frame(regs), nil
}
