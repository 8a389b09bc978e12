package bootstrap

import "sort"

// quantLibMonotonicConvexZeroFunc implements a Hagan-West-flavoured
// monotonic-convex interpolation: cubic Hermite with equal endpoint slopes
// per interval, where the local slope is passed through a Hyman
// monotonicity filter against its neighbour slopes before use. Flat
// extrapolation applies outside the pillar span.
func quantLibMonotonicConvexZeroFunc(points []BootstrapPoint) func(t float64) float64 {
	n := len(points)
	if n == 0 {
		return func(float64) float64 { return 0 }
	}
	if n == 1 {
		r := points[0].Rate
		return func(float64) float64 { return r }
	}

	tenors := make([]float64, n)
	rates := make([]float64, n)
	for i, p := range points {
		tenors[i] = p.Tenor
		rates[i] = p.Rate
	}

	// Per-interval slopes s[i] = slope of segment [tenors[i], tenors[i+1]].
	slopes := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		slopes[i] = (rates[i+1] - rates[i]) / (tenors[i+1] - tenors[i])
	}

	return func(t float64) float64 {
		if t <= tenors[0] {
			return rates[0]
		}
		if t >= tenors[n-1] {
			return rates[n-1]
		}

		idx := sort.Search(n, func(i int) bool { return tenors[i] >= t }) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > n-2 {
			idx = n - 2
		}

		t0, t1 := tenors[idx], tenors[idx+1]
		r0, r1 := rates[idx], rates[idx+1]
		dt := t1 - t0
		s := slopes[idx]

		sMinus := s
		if idx > 0 {
			sMinus = slopes[idx-1]
		}
		sPlus := s
		if idx < n-2 {
			sPlus = slopes[idx+1]
		}

		// Hyman monotonicity filter.
		if sMinus*s < 0 || s*sPlus < 0 {
			s = 0
		}

		x := (t - t0) / dt
		h00 := 2*x*x*x - 3*x*x + 1
		h10 := x*x*x - 2*x*x + x
		h01 := -2*x*x*x + 3*x*x
		h11 := x*x*x - x*x

		return h00*r0 + h10*dt*s + h01*r1 + h11*dt*s
	}
}
