// Package spline implements the natural cubic spline kernel shared by the
// cubic-spline and log-cubic engines: one tridiagonal solve for the second
// derivatives, and a Horner evaluation of the per-segment cubic.
package spline

import "sort"

// Segment holds one cubic piece a + b*h + c*h^2 + d*h^3, h = t - X[i].
type Segment struct {
	X, A, B, C, D float64
}

// Natural fits a natural cubic spline (zero second derivative at both ends)
// through the strictly increasing points (x[i], y[i]). Panics if x is not
// strictly increasing or has fewer than 2 points, since callers are
// expected to have already de-duplicated and sorted their pillars.
func Natural(x, y []float64) []Segment {
	n := len(x)
	if n < 2 {
		panic("spline.Natural: need at least 2 points")
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			panic("spline.Natural: x must be strictly increasing")
		}
	}

	if n == 2 {
		slope := (y[1] - y[0]) / (x[1] - x[0])
		return []Segment{
			{X: x[0], A: y[0], B: slope, C: 0, D: 0},
			{X: x[1], A: y[1], B: slope, C: 0, D: 0},
		}
	}

	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for the quadratic coefficients m (half the second
	// derivatives at the knots), natural boundary m[0]=m[n-1]=0.
	alpha := make([]float64, n)
	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)

	l[0] = 1
	for i := 1; i < n-1; i++ {
		alpha[i] = 3*(y[i+1]-y[i])/h[i] - 3*(y[i]-y[i-1])/h[i-1]
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n-1] = 1

	m := make([]float64, n)
	for i := n - 2; i >= 0; i-- {
		m[i] = z[i] - mu[i]*m[i+1]
	}

	segs := make([]Segment, n)
	for i := 0; i < n-1; i++ {
		b := (y[i+1]-y[i])/h[i] - h[i]*(2*m[i]+m[i+1])/3
		d := (m[i+1] - m[i]) / (3 * h[i])
		segs[i] = Segment{X: x[i], A: y[i], B: b, C: m[i], D: d}
	}
	// Terminal node: Eval reads only its X, to detect the flat tail beyond
	// x[n-1]; B records the end slope of the last segment.
	lastH := h[n-2]
	lastSlope := segs[n-2].B + 2*segs[n-2].C*lastH + 3*segs[n-2].D*lastH*lastH
	segs[n-1] = Segment{X: x[n-1], A: y[n-1], B: lastSlope, C: 0, D: 0}

	return segs
}

// Eval evaluates the spline built by Natural at t. Below x[0] it holds
// segs[0].A flat; beyond the last knot it holds the last segment's value at
// its right end (the last knot's y) flat.
func Eval(segs []Segment, t float64) float64 {
	n := len(segs)
	if n == 0 {
		return 0
	}
	if t <= segs[0].X {
		return segs[0].A
	}
	if t >= segs[n-1].X {
		last := segs[n-2]
		h := segs[n-1].X - last.X
		return horner(last, h)
	}

	idx := sort.Search(n, func(i int) bool { return segs[i].X > t }) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > n-2 {
		idx = n - 2
	}
	return horner(segs[idx], t-segs[idx].X)
}

func horner(s Segment, h float64) float64 {
	return s.A + h*(s.B+h*(s.C+h*s.D))
}
