package bootstrap

import "github.com/meenmo/discountcurve/bootstrap/internal/spline"

// cubicSplineZeroFunc fits a natural cubic spline through the pillar zero
// rates and returns it as a zero-rate function.
func cubicSplineZeroFunc(points []BootstrapPoint) func(t float64) float64 {
	if len(points) == 0 {
		return func(float64) float64 { return 0 }
	}
	if len(points) == 1 {
		r := points[0].Rate
		return func(float64) float64 { return r }
	}

	tenors := make([]float64, len(points))
	rates := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		rates[i] = p.Rate
	}

	segs := spline.Natural(tenors, rates)
	return func(t float64) float64 {
		return spline.Eval(segs, t)
	}
}
