// internal/bridge/bridge.go
package bridge

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aymen99tn/modbus-rpi-opta/internal/poller"
	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
	"github.com/aymen99tn/modbus-rpi-opta/internal/status"
)

// Link is the connection surface shared by both protocol ends.
type Link interface {
	EnsureConnected() bool
}

// FrameReader reads one register frame per cycle.
type FrameReader interface {
	ReadFrame() (poller.Frame, error)
}

// SampleWriter delivers one scaled sample to the relay.
type SampleWriter interface {
	EnsureConnected() bool
	WriteAll(sample scale.Sample) (ok bool, errText string)
}

// Publisher publishes one cycle snapshot.
type Publisher interface {
	Publish(s status.Snapshot) error
}

// Config is the scheduler timing policy.
type Config struct {
	Interval   time.Duration // delay after a completed cycle
	RetryDelay time.Duration // delay after a failed register read
}

// Bridge drives the cycle: read registers, scale, write attributes,
// publish the mirror. Cycles are strictly sequential; a cycle always
// either completes with a published snapshot or is abandoned at the read.
type Bridge struct {
	cfg      Config
	upstream Link
	reader   FrameReader
	writer   SampleWriter
	pub      Publisher

	now func() time.Time
	log zerolog.Logger

	totalUpdates uint64
	totalErrors  uint64
}

// New creates a bridge. All collaborators are required.
func New(cfg Config, upstream Link, reader FrameReader, writer SampleWriter, pub Publisher, log zerolog.Logger) (*Bridge, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("bridge: interval must be > 0")
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = cfg.Interval
	}
	if upstream == nil || reader == nil || writer == nil || pub == nil {
		return nil, errors.New("bridge: all collaborators required")
	}

	return &Bridge{
		cfg:      cfg,
		upstream: upstream,
		reader:   reader,
		writer:   writer,
		pub:      pub,
		now:      time.Now,
		log:      log,
	}, nil
}

// CycleOnce executes one full cycle. A register-read failure abandons the
// cycle before the writer and publisher are touched; the read is retried
// on a later tick. Returns false when the cycle was abandoned.
func (b *Bridge) CycleOnce() bool {
	b.upstream.EnsureConnected()

	frame, err := b.reader.ReadFrame()
	if err != nil {
		b.totalErrors++
		b.log.Warn().Err(err).Msg("register read failed, cycle skipped")
		return false
	}

	sample := scale.FromRegisters(frame)
	ok, errText := b.writer.WriteAll(sample)

	snap := status.Snapshot{
		At:       b.now(),
		MMSOK:    ok,
		MMSError: errText,
		Sample:   sample,
	}

	if ok {
		b.totalUpdates++
		b.log.Info().
			Float64("P_ac_W", sample[scale.PacW]).
			Float64("V_dc_V", sample[scale.VdcV]).
			Uint64("total_updates", b.totalUpdates).
			Msg("relay updated")
	} else {
		b.totalErrors++
		b.log.Error().
			Str("mms_error", errText).
			Uint64("total_errors", b.totalErrors).
			Msg("relay update failed")
	}

	if err := b.pub.Publish(snap); err != nil {
		// Mirror failures are operational noise, never fatal to the loop.
		b.log.Error().Err(err).Msg("mirror publish failed")
	}

	return true
}

// Run drives the loop until ctx is cancelled. Both links get an initial
// connection attempt, then the first cycle runs immediately.
func (b *Bridge) Run(ctx context.Context) {
	if !b.upstream.EnsureConnected() {
		b.log.Warn().Msg("source connect failed, will retry next cycle")
	}
	if !b.writer.EnsureConnected() {
		b.log.Warn().Msg("relay connect failed, will retry next cycle")
	}

	for {
		completed := b.CycleOnce()

		delay := b.cfg.Interval
		if !completed {
			delay = b.cfg.RetryDelay
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
