// internal/writer/types.go
package writer

import (
	"github.com/aymen99tn/modbus-rpi-opta/internal/scale"
	"github.com/aymen99tn/modbus-rpi-opta/internal/writer/mms"
)

// Point pairs one scaled quantity with its relay attribute reference and
// functional constraint.
type Point struct {
	Quantity scale.Quantity
	Ref      string
	FC       string
}

// Mapping is the ordered attribute table. Write order is slice order.
type Mapping []Point

// DefaultMapping mirrors the relay's measurement model.
// Immutable for the process lifetime.
var DefaultMapping = Mapping{
	{scale.PacW, "LD0/MMXU1.TotW.mag.f", mms.FCMeasured},
	{scale.PdcW, "LD0/MMXU1.TotWDC.mag.f", mms.FCMeasured},
	{scale.VdcV, "LD0/MMXU1.VolDC.mag.f", mms.FCMeasured},
	{scale.IdcA, "LD0/MMXU1.AmpDC.mag.f", mms.FCMeasured},
	{scale.GpoaWm2, "LD0/MET1.Irradiance.mag.f", mms.FCMeasured},
	{scale.TcellC, "LD0/MET1.CellTemp.mag.f", mms.FCMeasured},
}
