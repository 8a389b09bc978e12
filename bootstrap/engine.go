package bootstrap

// runEngine dispatches to the zero-rate function for method, plus (for
// Nelson-Siegel only) the fitted parameters. grid is pre-built so the
// Bloomberg engine, which needs the grid up front to build its smoothed
// forward curve, can share it with the Curve Assembler.
func runEngine(method Method, grid []float64, points []BootstrapPoint) (func(t float64) float64, *NelsonSiegelParams) {
	switch method {
	case MethodCubicSpline:
		return cubicSplineZeroFunc(points), nil
	case MethodNelsonSiegel:
		params := fitNelsonSiegel(points)
		return func(t float64) float64 { return nelsonSiegelRate(params, t) }, &params
	case MethodBloomberg:
		return bloombergEngine(grid, points), nil
	case MethodQuantLibLogLinear:
		return quantLibLogLinearZeroFunc(points), nil
	case MethodQuantLibLogCubic:
		return quantLibLogCubicZeroFunc(points), nil
	case MethodQuantLibLinearForward:
		return quantLibLinearForwardZeroFunc(points), nil
	case MethodQuantLibMonotonicConvex:
		return quantLibMonotonicConvexZeroFunc(points), nil
	case MethodLinear:
		return linearZeroFunc(points), nil
	default:
		return linearZeroFunc(points), nil
	}
}
