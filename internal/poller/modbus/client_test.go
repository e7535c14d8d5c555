// internal/poller/modbus/client_test.go
package modbus

import "testing"

func TestUnpackRegisters_BigEndian(t *testing.T) {
	out := unpackRegisters([]byte{0x09, 0x2E, 0x00, 0x01, 0xFF, 0xFF})

	want := []uint16{2350, 1, 65535}
	if len(out) != len(want) {
		t.Fatalf("expected %d registers, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("register %d: got=%d want=%d", i, out[i], want[i])
		}
	}
}

func TestNew_RequiresEndpoint(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint, got nil")
	}
}

func TestReadHoldingRegisters_NotConnected(t *testing.T) {
	c, err := New(Config{Endpoint: "127.0.0.1:1502"})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := c.ReadHoldingRegisters(0, 6); err == nil {
		t.Fatalf("expected not-connected error, got nil")
	}
}
