package calc

import (
	"math/big"
	"strings"
)

// Decimals is the number of decimal places results are rounded to for display.
const Decimals = 12

// Format renders a number for display. Integers are shown without a fraction,
// other values are rounded to Decimals places, with trailing zeros removed.
// Rounding hides the representation error of binary floating point, e.g.
// 0.1 + 0.2 is shown as 0.3.
func Format(f *big.Float) string {
	if f == nil {
		return ""
	}
	if f.IsInf() {
		return f.String()
	}
	if f.Sign() == 0 { // including -0
		return "0"
	}
	if f.IsInt() {
		return f.Text('f', 0)
	}
	s := f.Text('f', Decimals)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
