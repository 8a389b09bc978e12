// Package bootstrap builds zero-coupon discount curves from futures, swap,
// and bond observations. It is a pure, synchronous, single-threaded library:
// every entry point consumes input slices and a currency tag and returns a
// self-contained BootstrapResult, with no I/O, no shared state, and no
// exceptions. See [Bootstrap], [BootstrapBonds], and [ExportCSV].
package bootstrap

import "github.com/google/uuid"

// Source identifies where a pillar or grid point's rate came from. The
// space is closed; switches over Source should be exhaustive rather than
// comparing against string literals.
type Source int

const (
	SourceSwap Source = iota
	SourceFutures
	SourceBond
	SourceInterpolated
)

func (s Source) String() string {
	switch s {
	case SourceSwap:
		return "swap"
	case SourceFutures:
		return "futures"
	case SourceBond:
		return "bond"
	case SourceInterpolated:
		return "interpolated"
	default:
		return "unknown"
	}
}

// Compounding enumerates the compounding conventions a BasisConvention can
// declare for a currency's swap market.
type Compounding int

const (
	CompoundSimple Compounding = iota
	CompoundAnnual
	CompoundSemiAnnual
	CompoundQuarterly
	CompoundContinuous
)

// Method selects one of the eight bootstrapping engines run by
// [Bootstrap]. An unrecognised value falls back to MethodLinear.
type Method int

const (
	MethodLinear Method = iota
	MethodCubicSpline
	MethodNelsonSiegel
	MethodBloomberg
	MethodQuantLibLogLinear
	MethodQuantLibLogCubic
	MethodQuantLibLinearForward
	MethodQuantLibMonotonicConvex
)

// ParseMethod maps a method literal to its Method constant. Unknown
// literals fall back to MethodLinear, per the core's silent-fallback
// error-handling policy: no error is returned for an unrecognised method.
func ParseMethod(literal string) Method {
	switch literal {
	case "linear":
		return MethodLinear
	case "cubic_spline":
		return MethodCubicSpline
	case "nelson_siegel":
		return MethodNelsonSiegel
	case "bloomberg":
		return MethodBloomberg
	case "quantlib_log_linear":
		return MethodQuantLibLogLinear
	case "quantlib_log_cubic":
		return MethodQuantLibLogCubic
	case "quantlib_linear_forward":
		return MethodQuantLibLinearForward
	case "quantlib_monotonic_convex":
		return MethodQuantLibMonotonicConvex
	default:
		return MethodLinear
	}
}

func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodCubicSpline:
		return "cubic_spline"
	case MethodNelsonSiegel:
		return "nelson_siegel"
	case MethodBloomberg:
		return "bloomberg"
	case MethodQuantLibLogLinear:
		return "quantlib_log_linear"
	case MethodQuantLibLogCubic:
		return "quantlib_log_cubic"
	case MethodQuantLibLinearForward:
		return "quantlib_linear_forward"
	case MethodQuantLibMonotonicConvex:
		return "quantlib_monotonic_convex"
	default:
		return "linear"
	}
}

// BasisConvention is the immutable (day-count, compounding, payment
// frequency) triple a currency's swap market quotes against.
type BasisConvention struct {
	Currency         string
	DayCount         string // "ACT/360", "ACT/365", "ACT/ACT", "30/360"
	Compounding      Compounding
	PaymentFrequency int // coupons per year
}

// RawPoint is an input observation before normalisation: a tenor in years
// and a decimal rate, as received from a swap, bond, or futures source.
// Futures rates are price-implied ((100-price)/100); swap and bond rates
// are par decimals.
type RawPoint struct {
	Tenor  float64
	Rate   float64
	Source Source
}

// BootstrapPoint is a normalised calibration pillar: a continuously
// compounded zero rate at a strictly positive tenor, tagged with its
// source and priority. Priority 1 is swap/bond authority, priority 2 is
// futures; lower priority wins during de-duplication and reconciliation.
type BootstrapPoint struct {
	Tenor        float64
	Rate         float64
	Source       Source
	Priority     int
	Adjusted     bool
	OriginalRate float64 // meaningful only when Adjusted is true
}

// DiscountFactor is one point on the dense output grid: a tenor, its
// discount factor, the equivalent continuously compounded zero rate, the
// instantaneous forward rate from the previous grid point, and a source
// tag (a pillar's source if the grid point sits on a pillar, else
// SourceInterpolated).
type DiscountFactor struct {
	Tenor       float64
	DF          float64
	ZeroRate    float64
	ForwardRate float64
	Source      Source
}

// CurvePoint is the (tenor, zero rate) projection of a DiscountFactor, used
// for display/plotting where the DF and forward are not needed.
type CurvePoint struct {
	Tenor    float64
	ZeroRate float64
}

// NelsonSiegelParams holds the fitted parameters of the Nelson-Siegel
// model. Lambda is always within [0.05, 3.0].
type NelsonSiegelParams struct {
	Beta0  float64
	Beta1  float64
	Beta2  float64
	Lambda float64
}

// BootstrapResult is the self-contained output of a bootstrap call. It owns
// its slices outright; ownership passes to the caller and nothing in this
// package retains a reference after the call returns.
type BootstrapResult struct {
	RunID           uuid.UUID
	Method          Method
	Currency        string
	BasisConvention BasisConvention
	InputPoints     []RawPoint
	AdjustedPoints  []BootstrapPoint
	DiscountFactors []DiscountFactor
	CurvePoints     []CurvePoint
	Parameters      *NelsonSiegelParams // non-nil only for MethodNelsonSiegel
}
