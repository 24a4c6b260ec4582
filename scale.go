package binpack3d

import "math"

// ToUnits converts a caller-supplied measurement into the fixed integer
// unit the engine operates in: round(value * 10^factor). The reference
// implementation hardcodes factor to 1 (tenths); here it is a parameter
// so callers can choose the precision their input data warrants. A
// factor of 0 passes value through as a whole-number round.
func ToUnits(value float64, factor int) int64 {
	return int64(math.Round(value * math.Pow(10, float64(factor))))
}
