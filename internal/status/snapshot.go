// internal/status/snapshot.go
package status

import (
	"time"

	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
)

// Snapshot is the outcome of one bridge cycle.
// Produced by the scheduler, consumed exactly once by the publisher,
// never retained across cycles.
type Snapshot struct {
	At       time.Time
	MMSOK    bool
	MMSError string // empty when MMSOK
	Sample   scale.Sample
}
