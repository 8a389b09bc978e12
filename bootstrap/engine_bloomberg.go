package bootstrap

import (
	"math"
	"sort"
)

const bloombergForwardFloor = 1e-4

// bloombergEngine implements the log-DF/forward-smoothing engine of
// §4.3.4: linear interpolation of log DF on the grid, a per-interval
// forward derived from adjacent DFs, a non-expansive 3-point smoothing
// pass, and DFs rebuilt from the smoothed forwards.
func bloombergEngine(grid []float64, points []BootstrapPoint) func(t float64) float64 {
	if len(points) == 0 {
		return func(float64) float64 { return 0 }
	}
	if len(points) == 1 {
		r := points[0].Rate
		return func(float64) float64 { return r }
	}

	tenors := make([]float64, len(points))
	logDF := make([]float64, len(points))
	rates := make([]float64, len(points))
	for i, p := range points {
		tenors[i] = p.Tenor
		logDF[i] = -p.Rate * p.Tenor
		rates[i] = p.Rate
	}

	gridLogDF := make([]float64, len(grid))
	for i, t := range grid {
		gridLogDF[i] = interpolateLogDF(tenors, logDF, rates, t)
	}

	df := make([]float64, len(grid))
	for i, l := range gridLogDF {
		df[i] = math.Exp(l)
	}

	forwards := make([]float64, len(grid))
	prevDF, prevT := 1.0, 0.0
	for i, t := range grid {
		forwards[i] = -math.Log(df[i]/prevDF) / (t - prevT)
		prevDF, prevT = df[i], t
	}

	smoothed := make([]float64, len(forwards))
	for i := range forwards {
		if i == 0 || i == len(forwards)-1 {
			smoothed[i] = forwards[i]
			continue
		}
		smoothed[i] = 0.6*forwards[i] + 0.2*forwards[i-1] + 0.2*forwards[i+1]
	}
	for i := range smoothed {
		if smoothed[i] < bloombergForwardFloor {
			smoothed[i] = bloombergForwardFloor
		}
	}

	rebuiltDF := make([]float64, len(grid))
	zeroRates := make(map[float64]float64, len(grid))
	prevDF, prevT = 1.0, 0.0
	for i, t := range grid {
		dt := t - prevT
		rebuiltDF[i] = prevDF * math.Exp(-smoothed[i]*dt)
		zeroRates[t] = -math.Log(rebuiltDF[i]) / t
		prevDF, prevT = rebuiltDF[i], t
	}

	lastGridTenor := grid[len(grid)-1]
	return func(t float64) float64 {
		if r, ok := zeroRates[t]; ok {
			return r
		}
		// Off-grid query: fall back to the log-DF interpolation directly,
		// with t capped at the last grid tenor.
		if t > lastGridTenor {
			t = lastGridTenor
		}
		l := interpolateLogDF(tenors, logDF, rates, t)
		if t <= 0 {
			return 0
		}
		return -l / t
	}
}

// interpolateLogDF linearly interpolates log DF between pillars. Beyond the
// last pillar it extrapolates by holding the last pillar's continuous rate
// flat; before the first pillar it scales by t/t0.
func interpolateLogDF(tenors, logDF, rates []float64, t float64) float64 {
	n := len(tenors)
	if t <= tenors[0] {
		if tenors[0] == 0 {
			return 0
		}
		return logDF[0] * (t / tenors[0])
	}
	if t >= tenors[n-1] {
		return -rates[n-1] * t
	}
	idx := sort.Search(n, func(i int) bool { return tenors[i] >= t })
	if tenors[idx] == t {
		return logDF[idx]
	}
	lo, hi := idx-1, idx
	frac := (t - tenors[lo]) / (tenors[hi] - tenors[lo])
	return logDF[lo] + frac*(logDF[hi]-logDF[lo])
}
