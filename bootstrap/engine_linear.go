package bootstrap

import "sort"

// linearZeroFunc returns a zero-rate function that piecewise-linearly
// interpolates the pillar set by tenor, with flat extrapolation at both
// ends.
func linearZeroFunc(points []BootstrapPoint) func(t float64) float64 {
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

	return func(t float64) float64 {
		return linearInterp(tenors, rates, t)
	}
}

// linearInterp piecewise-linearly interpolates y over strictly increasing x,
// with flat extrapolation beyond either end.
func linearInterp(x, y []float64, t float64) float64 {
	n := len(x)
	if t <= x[0] {
		return y[0]
	}
	if t >= x[n-1] {
		return y[n-1]
	}
	idx := sort.Search(n, func(i int) bool { return x[i] >= t })
	if x[idx] == t {
		return y[idx]
	}
	lo, hi := idx-1, idx
	frac := (t - x[lo]) / (x[hi] - x[lo])
	return y[lo] + frac*(y[hi]-y[lo])
}
