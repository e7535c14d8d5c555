// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"
)

// Client is the upstream Modbus TCP link. It owns one connection and
// reconnects lazily: a transport error marks the link down and a later
// EnsureConnected re-dials.
type Client struct {
	handler   *modbus.TCPClientHandler
	client    modbus.Client
	connected bool
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates an unconnected client. Call EnsureConnected before reading.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("poller modbus: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// EnsureConnected dials if the link is down.
// Idempotent: a connected link returns true with no network traffic.
// ONE attempt per call; retries belong to future cycles.
func (c *Client) EnsureConnected() bool {
	if c.connected {
		return true
	}
	if err := c.handler.Connect(); err != nil {
		return false
	}
	c.connected = true
	return true
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	c.connected = false
	return c.handler.Close()
}

// ReadHoldingRegisters reads qty registers starting at addr.
// A read error marks the link down so a future tick re-dials.
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if !c.connected {
		return nil, errors.New("poller modbus: not connected")
	}

	raw, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		c.connected = false
		_ = c.handler.Close()
		return nil, err
	}

	return unpackRegisters(raw), nil
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
