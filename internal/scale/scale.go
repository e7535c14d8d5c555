// internal/scale/scale.go
package scale

// Quantity indexes one telemetry field, in register order.
type Quantity int

const (
	PacW Quantity = iota // AC active power, W
	PdcW                 // DC power, W
	VdcV                 // DC voltage, V
	IdcA                 // DC current, A
	GpoaWm2              // plane-of-array irradiance, W/m2
	TcellC               // cell temperature, degC

	NumQuantities
)

// keys are the mirror field names, register-ordered.
// Part of the dashboard contract; do not rename without versioning.
var keys = [NumQuantities]string{
	"P_ac_W",
	"P_dc_W",
	"V_dc_V",
	"I_dc_A",
	"G_poa_Wm2",
	"T_cell_C",
}

// divisors holds the per-quantity scale constant applied to the raw register.
var divisors = [NumQuantities]float64{
	10.0,
	10.0,
	10.0,
	10.0,
	10.0,
	10.0,
}

// Key returns the mirror field name for the quantity.
func (q Quantity) Key() string {
	return keys[q]
}

// Sample holds the scaled engineering values, register-ordered.
// One Sample corresponds to exactly one register frame.
type Sample [NumQuantities]float64

// FromRegisters converts a raw register frame into engineering units.
// Pure and total: each field is the register value divided by its scale
// constant, plain IEEE-754 division, no clamping.
func FromRegisters(regs []uint16) Sample {
	var s Sample
	for q := Quantity(0); q < NumQuantities; q++ {
		if int(q) >= len(regs) {
			break
		}
		s[q] = float64(regs[q]) / divisors[q]
	}
	return s
}
