package graphics

import "strconv"

// formatReal formats a content-stream operand: integral values print
// without a decimal point, everything else uses %f-style formatting
// with only as many digits as needed.
func formatReal(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatReal is the exported form of formatReal, for packages outside
// graphics that build operator text directly (document's DrawingContext).
func FormatReal(v float64) string { return formatReal(v) }
