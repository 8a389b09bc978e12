package bootstrap

import "math"

const (
	pillarTagTolerance             = 0.01
	pillarTagToleranceNelsonSiegel = 0.05
)

// assemble turns a zero-rate function into the grid of discount factors,
// zero rates, and forwards that make up a BootstrapResult. zeroAt must be
// defined (possibly via flat extrapolation) at every grid tenor.
func assemble(grid []float64, points []BootstrapPoint, zeroAt func(t float64) float64, method Method) ([]DiscountFactor, []CurvePoint) {
	if len(grid) == 0 {
		return nil, nil
	}

	tol := pillarTagTolerance
	if method == MethodNelsonSiegel {
		tol = pillarTagToleranceNelsonSiegel
	}

	dfs := make([]DiscountFactor, len(grid))
	curve := make([]CurvePoint, len(grid))

	prevDF := 1.0
	prevTenor := 0.0
	for i, t := range grid {
		r := zeroAt(t)
		df := math.Exp(-r * t)

		var fwd float64
		if i == 0 {
			fwd = r
		} else {
			fwd = -math.Log(df/prevDF) / (t - prevTenor)
		}
		if fwd < 0 {
			fwd = 0
		}

		dfs[i] = DiscountFactor{
			Tenor:       t,
			DF:          df,
			ZeroRate:    r,
			ForwardRate: fwd,
			Source:      tagSource(t, points, tol),
		}
		curve[i] = CurvePoint{Tenor: t, ZeroRate: r}

		prevDF = df
		prevTenor = t
	}

	return dfs, curve
}

// tagSource copies the nearest pillar's source if it lies within tol of t,
// else reports the grid point as interpolated.
func tagSource(t float64, points []BootstrapPoint, tol float64) Source {
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range points {
		d := math.Abs(p.Tenor - t)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best >= 0 && bestDist <= tol {
		return points[best].Source
	}
	return SourceInterpolated
}
