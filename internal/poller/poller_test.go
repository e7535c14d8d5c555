// internal/poller/poller_test.go
package poller

import (
	"errors"
	"testing"
)

type fakeClient struct {
	regs []uint16
	err  error

	calls int
}

func (f *fakeClient) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.regs, nil
}

func TestReadFrame_Success(t *testing.T) {
	cli := &fakeClient{regs: []uint16{2350, 2400, 3800, 620, 9500, 4250}}

	r, err := New(Config{Address: 0, Quantity: 6}, cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	frame, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame err=%v", err)
	}
	if len(frame) != 6 {
		t.Fatalf("expected 6 registers, got %d", len(frame))
	}
	if frame[4] != 9500 {
		t.Fatalf("register 4: got=%d want=9500", frame[4])
	}
}

func TestReadFrame_ShortResponseIsError(t *testing.T) {
	cli := &fakeClient{regs: []uint16{1, 2, 3, 4}}

	r, err := New(Config{Address: 0, Quantity: 6}, cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := r.ReadFrame(); err == nil {
		t.Fatalf("expected short-frame error, got nil")
	}
}

func TestReadFrame_ClientErrorPassedThrough(t *testing.T) {
	readErr := errors.New("connection reset")
	cli := &fakeClient{err: readErr}

	r, err := New(Config{Address: 0, Quantity: 6}, cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := r.ReadFrame(); !errors.Is(err, readErr) {
		t.Fatalf("expected client error, got %v", err)
	}
}

func TestNew_RejectsZeroQuantity(t *testing.T) {
	if _, err := New(Config{Quantity: 0}, &fakeClient{}); err == nil {
		t.Fatalf("expected error for zero quantity, got nil")
	}
}
