package bootstrap

// quantLibLogLinearZeroFunc piecewise-linearly interpolates log DF = -r*t
// across pillars and derives r(t) = -logDF(t)/t. Forwards are implicitly
// constant per segment; the Curve Assembler still derives them from DFs.
// Outside the pillar span the zero rate is extrapolated flat.
func quantLibLogLinearZeroFunc(points []BootstrapPoint) func(t float64) float64 {
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

	return func(t float64) float64 {
		if t <= tenors[0] {
			return points[0].Rate
		}
		if t >= tenors[len(tenors)-1] {
			return points[len(points)-1].Rate
		}
		l := linearInterp(tenors, logDF, t)
		return -l / t
	}
}
