// internal/writer/mms/client.go
package mms

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"time"
)

const (
	magicHi byte = 0x4D // 'M'
	magicLo byte = 0x57 // 'W'

	versionV1 byte = 0x01

	respOK byte = 0x00
)

// FCMeasured is the functional constraint tag for measured values.
const FCMeasured = "MX"

// Functional constraint wire codes.
const (
	fcCodeMX byte = 0x01
)

// Client is the downstream relay-gateway link: one TCP connection, lazily
// established, carrying framed scalar float writes.
type Client struct {
	endpoint string
	timeout  time.Duration
	conn     net.Conn
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New creates an unconnected client. The connection is established by the
// first EnsureConnected call.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer mms: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
	}, nil
}

// EnsureConnected dials if the link is down.
// Idempotent: a connected link returns true with no network traffic.
// ONE attempt per call; retries belong to future cycles.
func (c *Client) EnsureConnected() bool {
	if c.conn != nil {
		return true
	}
	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return false
	}
	c.conn = conn
	return true
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// WriteError is a write the relay rejected. The code is passed through
// verbatim from the gateway.
type WriteError struct {
	Ref     string
	FC      string
	ErrCode uint16
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s FC=%s err=%d", e.Ref, e.FC, e.ErrCode)
}

// Code returns the relay error code.
func (e *WriteError) Code() uint16 { return e.ErrCode }

// WriteFloat delivers one scalar write for ref under the given functional
// constraint. A relay rejection comes back as *WriteError; a transport
// error drops the connection so a future cycle re-dials.
func (c *Client) WriteFloat(ref, fc string, v float64) error {
	if c.conn == nil {
		return errors.New("writer mms: not connected")
	}

	pkt, err := buildWriteRequest(ref, fc, float32(v))
	if err != nil {
		return err
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	if err := writeAll(c.conn, pkt); err != nil {
		c.drop()
		return fmt.Errorf("writer mms: write: %w", err)
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(c.timeout))
	var resp [1]byte
	if _, err := io.ReadFull(c.conn, resp[:]); err != nil {
		c.drop()
		return fmt.Errorf("writer mms: read status: %w", err)
	}

	if resp[0] != respOK {
		return &WriteError{Ref: ref, FC: fc, ErrCode: uint16(resp[0])}
	}
	return nil
}

func (c *Client) drop() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

//
// ---- write request builder (LOCKED) ----
//
// Layout:
//   0-1  Magic "MW"
//   2    Version (0x01)
//   3    Functional constraint code
//   4-5  Reference length
//   6+   Reference bytes (ASCII)
//   then Value, float32 big-endian
//
// Response is a single status byte: 0x00 OK, anything else is the relay
// error code.
//

func buildWriteRequest(ref, fc string, v float32) ([]byte, error) {
	code, ok := fcWireCode(fc)
	if !ok {
		return nil, fmt.Errorf("writer mms: unknown functional constraint %q", fc)
	}
	if ref == "" {
		return nil, errors.New("writer mms: empty reference")
	}

	pkt := make([]byte, 6+len(ref)+4)
	pkt[0] = magicHi
	pkt[1] = magicLo
	pkt[2] = versionV1
	pkt[3] = code
	binary.BigEndian.PutUint16(pkt[4:6], uint16(len(ref)))
	copy(pkt[6:], ref)
	binary.BigEndian.PutUint32(pkt[6+len(ref):], math.Float32bits(v))

	return pkt, nil
}

func fcWireCode(fc string) (byte, bool) {
	switch fc {
	case FCMeasured:
		return fcCodeMX, true
	}
	return 0, false
}

// ---- helpers ----

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
