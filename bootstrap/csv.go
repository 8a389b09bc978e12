package bootstrap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func isNaN(v float64) bool { return math.IsNaN(v) }

const csvHeader = "Tenor, Discount Factor, Zero Rate (%), Forward Rate (%), Source, Day Count, Compounding"

// ExportCSV renders a BootstrapResult as ASCII, LF-terminated CSV: a fixed
// header line followed by one data line per grid point. Tenor is 2dp, DF is
// 8dp, rates are 4dp in percent, and an absent forward renders as "N/A".
// No embedded commas ever occur in a field, so no quoting is needed.
func ExportCSV(result BootstrapResult) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	compounding := compoundingLabel(result.BasisConvention.Compounding)

	// The Curve Assembler always populates ForwardRate (forward(t_0) =
	// r(t_0) per spec), so "N/A" never actually triggers here; it is kept
	// for callers that hand ExportCSV a DiscountFactor built outside the
	// Assembler with a NaN forward.
	for _, dfPoint := range result.DiscountFactors {
		forward := "N/A"
		if !isNaN(dfPoint.ForwardRate) {
			forward = formatFixed(dfPoint.ForwardRate*100, 4)
		}
		fmt.Fprintf(&b, "%s, %s, %s, %s, %s, %s, %s\n",
			formatFixed(dfPoint.Tenor, 2),
			formatFixed(dfPoint.DF, 8),
			formatFixed(dfPoint.ZeroRate*100, 4),
			forward,
			dfPoint.Source.String(),
			result.BasisConvention.DayCount,
			compounding,
		)
	}

	return b.String()
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func compoundingLabel(c Compounding) string {
	switch c {
	case CompoundSimple:
		return "simple"
	case CompoundAnnual:
		return "annual"
	case CompoundSemiAnnual:
		return "semi-annual"
	case CompoundQuarterly:
		return "quarterly"
	case CompoundContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}
