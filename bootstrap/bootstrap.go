package bootstrap

import "github.com/google/uuid"

// Bootstrap normalises swaps and futures observations for currency, runs
// the selected method's engine, and assembles the resulting curve. Empty
// input yields an empty result with Method/Currency/BasisConvention still
// populated; no error is ever returned, per the core's silent-fallback
// error-handling policy.
func Bootstrap(swaps, futures []RawPoint, method Method, currency string) BootstrapResult {
	conv := GetConvention(currency)
	points := normalise(swaps, futures, conv)

	inputPoints := make([]RawPoint, 0, len(swaps)+len(futures))
	inputPoints = append(inputPoints, swaps...)
	inputPoints = append(inputPoints, futures...)

	result := BootstrapResult{
		RunID:           uuid.New(),
		Method:          method,
		Currency:        currency,
		BasisConvention: conv,
		InputPoints:     inputPoints,
		AdjustedPoints:  points,
	}

	if len(points) == 0 {
		return result
	}

	grid := buildGrid(points)
	zeroAt, params := runEngine(method, grid, points)
	result.Parameters = params
	result.DiscountFactors, result.CurvePoints = assemble(grid, points, zeroAt, method)
	return result
}

// BootstrapBonds normalises bonds as swap-equivalent yields (source=bond,
// priority=1, no futures reconciliation) and runs the same engine/assembler
// pipeline as Bootstrap. Fewer than 2 bonds yields an empty result.
func BootstrapBonds(bonds []RawPoint, method Method, currency string) BootstrapResult {
	conv := GetConvention(currency)

	result := BootstrapResult{
		RunID:           uuid.New(),
		Method:          method,
		Currency:        currency,
		BasisConvention: conv,
		InputPoints:     append([]RawPoint{}, bonds...),
	}

	if len(bonds) < 2 {
		return result
	}

	points := normaliseBonds(bonds, conv)
	result.AdjustedPoints = points

	if len(points) == 0 {
		return result
	}

	grid := buildGrid(points)
	zeroAt, params := runEngine(method, grid, points)
	result.Parameters = params
	result.DiscountFactors, result.CurvePoints = assemble(grid, points, zeroAt, method)
	return result
}

// normaliseBonds converts bond yields to continuously compounded zero rates
// using the currency's swap convention, tags them as bonds, and de-duplicates
// by tenor without any futures reconciliation pass.
func normaliseBonds(bonds []RawPoint, conv BasisConvention) []BootstrapPoint {
	var points []BootstrapPoint
	for _, p := range bonds {
		if !validRaw(p) {
			continue
		}
		t := clipTenor(p.Tenor)
		points = append(points, BootstrapPoint{
			Tenor:    t,
			Rate:     swapRateToContinuous(p.Rate, t, conv),
			Source:   SourceBond,
			Priority: 1,
		})
	}
	return dedupeAndSort(points)
}
