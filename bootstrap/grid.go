package bootstrap

import "math"

// gridStep returns the uniform grid spacing for a pillar set: 0.5 years once
// any pillar's tenor exceeds 10 years, else 0.25 years.
func gridStep(points []BootstrapPoint) float64 {
	if maxTenor(points) > 10 {
		return 0.5
	}
	return 0.25
}

func maxTenor(points []BootstrapPoint) float64 {
	m := 0.0
	for _, p := range points {
		if p.Tenor > m {
			m = p.Tenor
		}
	}
	return m
}

// buildGrid returns {step, 2*step, ..., maxTenor+step}.
func buildGrid(points []BootstrapPoint) []float64 {
	if len(points) == 0 {
		return nil
	}
	step := gridStep(points)
	max := maxTenor(points)
	n := int(math.Ceil((max + step) / step))
	grid := make([]float64, n)
	for i := 0; i < n; i++ {
		grid[i] = step * float64(i+1)
	}
	return grid
}
