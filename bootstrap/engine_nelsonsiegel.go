package bootstrap

import "math"

const (
	nsLambdaMin = 0.05
	nsLambdaMax = 3.0

	nsLearningRate    = 5e-5
	nsIterations      = 8000
	nsLambdaGradScale = 0.05
)

// nelsonSiegelRate evaluates the Nelson-Siegel model at tenor t. At t close
// to zero it uses the beta0+beta1 limit to avoid a 0/0 division.
func nelsonSiegelRate(p NelsonSiegelParams, t float64) float64 {
	if t <= 0.001 {
		return p.Beta0 + p.Beta1
	}
	x := p.Lambda * t
	decay := (1 - math.Exp(-x)) / x
	return p.Beta0 + p.Beta1*decay + p.Beta2*(decay-math.Exp(-x))
}

// fitNelsonSiegel calibrates (beta0, beta1, beta2, lambda) by gradient
// descent, minimising the weighted squared error against points (swaps
// weighted 3x, futures/bonds 1x).
func fitNelsonSiegel(points []BootstrapPoint) NelsonSiegelParams {
	if len(points) == 0 {
		return NelsonSiegelParams{Lambda: 0.5}
	}

	p := initialNelsonSiegelGuess(points)

	for iter := 0; iter < nsIterations; iter++ {
		var gB0, gB1, gB2, gLambda float64

		for _, pt := range points {
			w := weightFor(pt.Source)
			model := nelsonSiegelRate(p, pt.Tenor)
			err := model - pt.Rate

			dB0, dB1, dB2, dLambda := nelsonSiegelGradients(p, pt.Tenor)

			gB0 += 2 * w * err * dB0
			gB1 += 2 * w * err * dB1
			gB2 += 2 * w * err * dB2
			gLambda += 2 * w * err * dLambda
		}

		p.Beta0 -= nsLearningRate * gB0
		p.Beta1 -= nsLearningRate * gB1
		p.Beta2 -= nsLearningRate * gB2
		p.Lambda -= nsLearningRate * nsLambdaGradScale * gLambda

		p.Lambda = clampFloat(p.Lambda, nsLambdaMin, nsLambdaMax)
	}

	return p
}

func weightFor(s Source) float64 {
	if s == SourceSwap {
		return 3
	}
	return 1
}

// nelsonSiegelGradients returns d(model)/d(beta0,beta1,beta2,lambda) at t.
func nelsonSiegelGradients(p NelsonSiegelParams, t float64) (dB0, dB1, dB2, dLambda float64) {
	if t <= 0.001 {
		return 1, 1, 0, 0
	}
	x := p.Lambda * t
	expNegX := math.Exp(-x)
	decay := (1 - expNegX) / x

	dB0 = 1
	dB1 = decay
	dB2 = decay - expNegX

	// d(decay)/dx = (x*expNegX - (1-expNegX)) / x^2 ; dx/dLambda = t.
	dDecayDx := (x*expNegX - (1 - expNegX)) / (x * x)
	dDecayDLambda := dDecayDx * t
	// d(-expNegX)/dLambda = t*expNegX.
	dLambda = p.Beta1*dDecayDLambda + p.Beta2*(dDecayDLambda+t*expNegX)
	return
}

// initialNelsonSiegelGuess seeds beta0/beta1/beta2/lambda from the pillar
// set's short/long rates and range, as specified.
func initialNelsonSiegelGuess(points []BootstrapPoint) NelsonSiegelParams {
	shortest, longest := points[0], points[0]
	rMax, rMin := points[0].Rate, points[0].Rate
	for _, p := range points {
		if p.Tenor < shortest.Tenor {
			shortest = p
		}
		if p.Tenor > longest.Tenor {
			longest = p
		}
		if p.Rate > rMax {
			rMax = p.Rate
		}
		if p.Rate < rMin {
			rMin = p.Rate
		}
	}

	rLong := longest.Rate
	rShort := shortest.Rate

	sign := 1.0
	if rMax-rLong < 0 {
		sign = -1.0
	}

	return NelsonSiegelParams{
		Beta0:  rLong,
		Beta1:  rShort - rLong,
		Beta2:  (rMax - rMin) * sign,
		Lambda: 0.5,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
