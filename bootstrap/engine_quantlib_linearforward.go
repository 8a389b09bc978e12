package bootstrap

// quantLibLinearForwardZeroFunc computes a per-pillar instantaneous forward
// estimate and linearly interpolates it across the grid, with flat
// extrapolation outside the pillar span. The interpolated forward is then
// used directly as the zero rate.
//
// This is a documented simplification carried over unchanged from the
// source system: integrating f(s) ds properly over [0, t] would give a
// different (and arguably more correct) zero rate, but downstream
// consumers depend on the exact numeric output of the direct assignment, so
// it is retained as-is rather than "fixed". See DESIGN.md.
func quantLibLinearForwardZeroFunc(points []BootstrapPoint) func(t float64) float64 {
	if len(points) == 0 {
		return func(float64) float64 { return 0 }
	}
	if len(points) == 1 {
		r := points[0].Rate
		return func(float64) float64 { return r }
	}

	tenors := make([]float64, len(points))
	forwards := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		if i == 0 {
			forwards[i] = p.Rate
			continue
		}
		prev := points[i-1]
		forwards[i] = p.Rate + p.Tenor*(p.Rate-prev.Rate)/(p.Tenor-prev.Tenor)
	}

	return func(t float64) float64 {
		return linearInterp(tenors, forwards, t)
	}
}
