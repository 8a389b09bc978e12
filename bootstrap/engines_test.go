package bootstrap

import (
	"math"
	"testing"
)

var allMethods = []Method{
	MethodLinear,
	MethodCubicSpline,
	MethodNelsonSiegel,
	MethodBloomberg,
	MethodQuantLibLogLinear,
	MethodQuantLibLogCubic,
	MethodQuantLibLinearForward,
	MethodQuantLibMonotonicConvex,
}

func samplePillars() []RawPoint {
	return []RawPoint{
		{Tenor: 1, Rate: 0.045, Source: SourceSwap},
		{Tenor: 2, Rate: 0.043, Source: SourceSwap},
		{Tenor: 5, Rate: 0.042, Source: SourceSwap},
		{Tenor: 10, Rate: 0.041, Source: SourceSwap},
	}
}

// TestUniversalInvariants checks the §8 "for every method on any non-empty
// pillar set" properties hold for all eight engines on the same pillar set.
func TestUniversalInvariants(t *testing.T) {
	t.Parallel()

	for _, method := range allMethods {
		method := method
		t.Run(method.String(), func(t *testing.T) {
			t.Parallel()
			result := Bootstrap(samplePillars(), nil, method, "USD")

			if len(result.DiscountFactors) == 0 {
				t.Fatal("expected non-empty discount factor grid")
			}

			prevTenor := -1.0
			for _, d := range result.DiscountFactors {
				if d.DF <= 0 || d.DF > 1 {
					t.Errorf("df out of (0,1]: %v at tenor %v", d.DF, d.Tenor)
				}
				if d.Tenor <= prevTenor {
					t.Errorf("grid tenors not strictly increasing: %v after %v", d.Tenor, prevTenor)
				}
				prevTenor = d.Tenor

				if d.ForwardRate < 0 {
					t.Errorf("negative forward rate %v at tenor %v", d.ForwardRate, d.Tenor)
				}

				wantZero := -math.Log(d.DF) / d.Tenor
				if math.Abs(d.ZeroRate-wantZero) > 1e-9 {
					t.Errorf("zero rate inconsistent with df: got %v, want %v", d.ZeroRate, wantZero)
				}
			}

			step := gridStep(result.AdjustedPoints)
			wantLen := int(math.Ceil((maxTenor(result.AdjustedPoints) + step) / step))
			if len(result.DiscountFactors) != wantLen {
				t.Errorf("grid length = %d, want %d", len(result.DiscountFactors), wantLen)
			}
		})
	}
}

// TestPillarRecovery checks that linear, log-linear, log-cubic, and cubic
// spline reproduce the normalised pillar rate exactly at pillar tenors.
func TestPillarRecovery(t *testing.T) {
	t.Parallel()

	methods := []Method{MethodLinear, MethodQuantLibLogLinear, MethodQuantLibLogCubic, MethodCubicSpline}
	for _, method := range methods {
		method := method
		t.Run(method.String(), func(t *testing.T) {
			t.Parallel()
			result := Bootstrap(samplePillars(), nil, method, "USD")

			for _, pillar := range result.AdjustedPoints {
				found := false
				for _, d := range result.DiscountFactors {
					if math.Abs(d.Tenor-pillar.Tenor) < 1e-6 {
						found = true
						if math.Abs(d.ZeroRate-pillar.Rate) > 1e-9 {
							t.Errorf("at tenor %v: zero rate %v, want pillar rate %v", pillar.Tenor, d.ZeroRate, pillar.Rate)
						}
					}
				}
				if !found {
					t.Errorf("pillar tenor %v not on grid (grid step should land on pillar tenors in this fixture)", pillar.Tenor)
				}
			}
		})
	}
}

// TestScenario1_USDLinear matches spec scenario 1.
func TestScenario1_USDLinear(t *testing.T) {
	t.Parallel()

	result := Bootstrap(samplePillars(), nil, MethodLinear, "USD")

	var at1y *DiscountFactor
	for i := range result.DiscountFactors {
		if math.Abs(result.DiscountFactors[i].Tenor-1) < 1e-9 {
			at1y = &result.DiscountFactors[i]
		}
	}
	if at1y == nil {
		t.Fatal("expected a grid point at tenor 1")
	}

	// A 1y par rate converts with the t <= 1 branch: ln(1+r*t)/t.
	rc := math.Log(1+0.045*1) / 1
	wantDF := math.Exp(-rc * 1)
	if math.Abs(at1y.DF-wantDF) > 1e-9 {
		t.Errorf("df(1) = %v, want %v", at1y.DF, wantDF)
	}

	prevDF := 1.0
	for _, d := range result.DiscountFactors {
		if d.DF > prevDF {
			t.Errorf("df not monotone decreasing at tenor %v", d.Tenor)
		}
		prevDF = d.DF
	}
}

// TestScenario3_USDBloomberg matches spec scenario 3.
func TestScenario3_USDBloomberg(t *testing.T) {
	t.Parallel()

	swaps := []RawPoint{
		{Tenor: 2, Rate: 0.040, Source: SourceSwap},
		{Tenor: 5, Rate: 0.042, Source: SourceSwap},
		{Tenor: 10, Rate: 0.041, Source: SourceSwap},
	}
	futures := []RawPoint{
		{Tenor: 0.25, Rate: 0.050, Source: SourceFutures},
		{Tenor: 0.5, Rate: 0.049, Source: SourceFutures},
		{Tenor: 0.75, Rate: 0.048, Source: SourceFutures},
	}

	result := Bootstrap(swaps, futures, MethodBloomberg, "USD")

	for _, pillar := range result.AdjustedPoints {
		if pillar.Source != SourceSwap {
			continue
		}
		found := false
		for _, d := range result.DiscountFactors {
			if math.Abs(d.Tenor-pillar.Tenor) <= 0.01 {
				found = true
			}
		}
		if !found {
			t.Errorf("swap pillar at tenor %v not recovered within 0.01", pillar.Tenor)
		}
	}

	for _, d := range result.DiscountFactors {
		if d.ForwardRate < 0 || d.ForwardRate > 0.10 {
			t.Errorf("forward %v at tenor %v outside [0, 0.10]", d.ForwardRate, d.Tenor)
		}
	}
}

// TestScenario4_GBPNelsonSiegel matches spec scenario 4.
func TestScenario4_GBPNelsonSiegel(t *testing.T) {
	t.Parallel()

	swaps := []RawPoint{
		{Tenor: 1, Rate: 0.05, Source: SourceSwap},
		{Tenor: 2, Rate: 0.048, Source: SourceSwap},
		{Tenor: 5, Rate: 0.045, Source: SourceSwap},
		{Tenor: 10, Rate: 0.042, Source: SourceSwap},
		{Tenor: 30, Rate: 0.04, Source: SourceSwap},
	}

	result := Bootstrap(swaps, nil, MethodNelsonSiegel, "GBP")
	if result.Parameters == nil {
		t.Fatal("expected Nelson-Siegel parameters to be populated")
	}
	if result.Parameters.Lambda < nsLambdaMin || result.Parameters.Lambda > nsLambdaMax {
		t.Errorf("lambda = %v, want within [%v, %v]", result.Parameters.Lambda, nsLambdaMin, nsLambdaMax)
	}

	var sumSq float64
	for _, pillar := range result.AdjustedPoints {
		model := nelsonSiegelRate(*result.Parameters, pillar.Tenor)
		diff := model - pillar.Rate
		sumSq += diff * diff
	}
	rmse := math.Sqrt(sumSq / float64(len(result.AdjustedPoints)))
	if rmse > 0.002 {
		t.Errorf("rmse = %v, want < 0.002", rmse)
	}
}

// TestScenario5_USDQuantLibLogLinearFlat matches spec scenario 5.
func TestScenario5_USDQuantLibLogLinearFlat(t *testing.T) {
	t.Parallel()

	swaps := []RawPoint{
		{Tenor: 1, Rate: 0.04, Source: SourceSwap},
		{Tenor: 2, Rate: 0.04, Source: SourceSwap},
		{Tenor: 5, Rate: 0.04, Source: SourceSwap},
	}

	result := Bootstrap(swaps, nil, MethodQuantLibLogLinear, "USD")
	for _, d := range result.DiscountFactors {
		if math.Abs(d.ZeroRate-0.04) > 1e-6 {
			t.Errorf("zero rate at %v = %v, want ~0.04", d.Tenor, d.ZeroRate)
		}
		if d.Tenor > 1 && math.Abs(d.ForwardRate-0.04) > 1e-4 {
			t.Errorf("forward at %v = %v, want ~0.04", d.Tenor, d.ForwardRate)
		}
	}
}

// TestScenario6_USDMonotonicConvex matches spec scenario 6.
func TestScenario6_USDMonotonicConvex(t *testing.T) {
	t.Parallel()

	swaps := []RawPoint{
		{Tenor: 1, Rate: 0.03, Source: SourceSwap},
		{Tenor: 2, Rate: 0.05, Source: SourceSwap},
		{Tenor: 3, Rate: 0.04, Source: SourceSwap},
	}

	result := Bootstrap(swaps, nil, MethodQuantLibMonotonicConvex, "USD")

	// Bounds are the normalised (continuously compounded) pillar rates, not
	// the par quotes: the 1y quote of 0.03 normalises to ln(1.03).
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, p := range result.AdjustedPoints {
		lo = math.Min(lo, p.Rate)
		hi = math.Max(hi, p.Rate)
	}
	for _, d := range result.DiscountFactors {
		if d.ZeroRate > hi+1e-9 || d.ZeroRate < lo-1e-9 {
			t.Errorf("zero rate %v at tenor %v overshoots pillar range [%v, %v]", d.ZeroRate, d.Tenor, lo, hi)
		}
	}
}

// TestMonotonicConvex_MonotoneInput checks the method-specific monotonicity
// property: on a monotone pillar set, the emitted zero-rate sequence stays
// monotone.
func TestMonotonicConvex_MonotoneInput(t *testing.T) {
	t.Parallel()

	swaps := []RawPoint{
		{Tenor: 1, Rate: 0.03, Source: SourceSwap},
		{Tenor: 2, Rate: 0.035, Source: SourceSwap},
		{Tenor: 5, Rate: 0.04, Source: SourceSwap},
		{Tenor: 10, Rate: 0.045, Source: SourceSwap},
	}

	result := Bootstrap(swaps, nil, MethodQuantLibMonotonicConvex, "USD")
	prev := -math.MaxFloat64
	for _, d := range result.DiscountFactors {
		if d.ZeroRate < prev-1e-9 {
			t.Errorf("zero rate not monotone: %v after %v at tenor %v", d.ZeroRate, prev, d.Tenor)
		}
		prev = d.ZeroRate
	}
}

// TestUnknownMethodFallsBackToLinear checks the unknown-tag fallback policy.
func TestUnknownMethodFallsBackToLinear(t *testing.T) {
	t.Parallel()

	pillars := samplePillars()
	want := Bootstrap(pillars, nil, MethodLinear, "USD")
	got := Bootstrap(pillars, nil, Method(999), "USD")

	if len(got.DiscountFactors) != len(want.DiscountFactors) {
		t.Fatalf("unknown method grid length = %d, want %d", len(got.DiscountFactors), len(want.DiscountFactors))
	}
	for i := range want.DiscountFactors {
		if math.Abs(got.DiscountFactors[i].DF-want.DiscountFactors[i].DF) > 1e-12 {
			t.Errorf("unknown method did not fall back to linear at index %d", i)
		}
	}
}

func TestEmptyInputYieldsEmptyResult(t *testing.T) {
	t.Parallel()

	result := Bootstrap(nil, nil, MethodLinear, "EUR")
	if len(result.DiscountFactors) != 0 || len(result.AdjustedPoints) != 0 {
		t.Error("expected empty result for empty input")
	}
	if result.Currency != "EUR" || result.BasisConvention.Currency != "EUR" {
		t.Error("expected currency/basis convention to still be populated")
	}
}

func TestBootstrapBonds_FewerThanTwoYieldsEmpty(t *testing.T) {
	t.Parallel()

	result := BootstrapBonds([]RawPoint{{Tenor: 5, Rate: 0.03}}, MethodLinear, "USD")
	if len(result.DiscountFactors) != 0 {
		t.Error("expected empty result for a single bond")
	}
}

func TestBootstrapBonds_MatchesSwapEquivalent(t *testing.T) {
	t.Parallel()

	bonds := []RawPoint{
		{Tenor: 2, Rate: 0.03, Source: SourceBond},
		{Tenor: 5, Rate: 0.032, Source: SourceBond},
		{Tenor: 10, Rate: 0.033, Source: SourceBond},
	}
	bondsAsSwaps := make([]RawPoint, len(bonds))
	for i, b := range bonds {
		bondsAsSwaps[i] = RawPoint{Tenor: b.Tenor, Rate: b.Rate, Source: SourceSwap}
	}

	viaBonds := BootstrapBonds(bonds, MethodLinear, "USD")
	viaSwaps := Bootstrap(bondsAsSwaps, nil, MethodLinear, "USD")

	if len(viaBonds.DiscountFactors) != len(viaSwaps.DiscountFactors) {
		t.Fatalf("grid length mismatch: %d vs %d", len(viaBonds.DiscountFactors), len(viaSwaps.DiscountFactors))
	}
	for i := range viaBonds.DiscountFactors {
		if math.Abs(viaBonds.DiscountFactors[i].DF-viaSwaps.DiscountFactors[i].DF) > 1e-12 {
			t.Errorf("df mismatch at index %d: %v vs %v", i, viaBonds.DiscountFactors[i].DF, viaSwaps.DiscountFactors[i].DF)
		}
	}
}
