package bootstrap

import "github.com/meenmo/discountcurve/bootstrap/internal/spline"

// quantLibLogCubicZeroFunc fits the same natural-cubic-spline kernel used by
// the cubic-spline engine, but over log DF = -r*t instead of the zero rate
// itself, then derives r(t) = -logDF(t)/t.
func quantLibLogCubicZeroFunc(points []BootstrapPoint) func(t float64) float64 {
	if len(points) == 0 {
		return func(float64) float64 { return 0 }
	}
	if len(points) == 1 {
		r := points[0].Rate
		return func(float64) float64 { return r }
	}

	tenors := make([]float64, len(points))
	logDF := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		logDF[i] = -p.Rate * p.Tenor
	}

	segs := spline.Natural(tenors, logDF)
	return func(t float64) float64 {
		if t <= 0 {
			return points[0].Rate
		}
		l := spline.Eval(segs, t)
		return -l / t
	}
}
