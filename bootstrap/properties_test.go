package bootstrap

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any strictly increasing, positive-tenor pillar set with
// plausible rates, the linear engine always produces a grid with df in
// (0,1], strictly increasing tenors, and non-negative forwards.
func TestProperty_LinearEngineUniversalInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("linear bootstrap respects df/tenor/forward invariants", prop.ForAll(
		func(seed []float64) bool {
			swaps := pillarsFromSeed(seed)
			if len(swaps) < 2 {
				return true
			}
			result := Bootstrap(swaps, nil, MethodLinear, "USD")

			prevTenor := -1.0
			for _, d := range result.DiscountFactors {
				if d.DF <= 0 || d.DF > 1+1e-12 {
					return false
				}
				if d.Tenor <= prevTenor {
					return false
				}
				prevTenor = d.Tenor
				if d.ForwardRate < 0 {
					return false
				}
				if math.Abs(d.ZeroRate-(-math.Log(d.DF)/d.Tenor)) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, gen.Float64Range(0.001, 0.08)),
	))

	properties.TestingRun(t)
}

// Property: for generated pillar sets under the linear method, ExportCSV
// always has exactly one header plus one row per grid point.
func TestProperty_ExportCSVRowCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("CSV row count matches grid length", prop.ForAll(
		func(seed []float64) bool {
			swaps := pillarsFromSeed(seed)
			if len(swaps) < 2 {
				return true
			}
			result := Bootstrap(swaps, nil, MethodLinear, "USD")
			csv := ExportCSV(result)
			rows := countLines(csv) - 1
			return rows == len(result.DiscountFactors)
		},
		gen.SliceOfN(5, gen.Float64Range(0.001, 0.08)),
	))

	properties.TestingRun(t)
}

// pillarsFromSeed turns a slice of raw rates into an increasing-tenor swap
// pillar set (tenors 1..len(seed) years) so generated cases stay realistic
// without needing a custom gopter generator for BootstrapPoint itself.
func pillarsFromSeed(seed []float64) []RawPoint {
	points := make([]RawPoint, len(seed))
	for i, rate := range seed {
		points[i] = RawPoint{Tenor: float64(i + 1), Rate: rate, Source: SourceSwap}
	}
	return points
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
