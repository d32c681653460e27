package usecase

import (
	"math"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// ROIInput are the knobs of the solar ROI calculator. All values are plain
// currency units; IncentiveRate is a fraction (0.30 = 30% tax credit).
type ROIInput struct {
	SystemCost    float64 `json:"system_cost"`
	IncentiveRate float64 `json:"incentive_rate"`
	AnnualSavings float64 `json:"annual_savings"`
}

// ROIResult is a deterministic projection over a 25-year system life.
type ROIResult struct {
	NetCost          float64 `json:"net_cost"`
	PaybackYears     float64 `json:"payback_years"`
	TwentyFiveYearRO float64 `json:"twenty_five_year_return"`
}

// ShippingQuote applies the cart shipping rule to an arbitrary subtotal.
type ShippingQuote struct {
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	FreeShipping bool    `json:"free_shipping"`
}

// CalculateROI is pure arithmetic with no error path: degenerate inputs
// (zero or negative savings) produce a zero payback instead of dividing by
// zero.
func CalculateROI(in ROIInput) ROIResult {
	rate := in.IncentiveRate
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	netCost := in.SystemCost * (1 - rate)
	if netCost < 0 {
		netCost = 0
	}

	payback := 0.0
	if in.AnnualSavings > 0 && netCost > 0 {
		payback = math.Round(netCost/in.AnnualSavings*10) / 10
	}

	return ROIResult{
		NetCost:          netCost,
		PaybackYears:     payback,
		TwentyFiveYearRO: in.AnnualSavings*25 - netCost,
	}
}

// QuoteShipping mirrors the cart ledger's shipping rule: free at the
// threshold, flat rate below it, nothing to ship costs nothing.
func QuoteShipping(subtotal float64) ShippingQuote {
	q := ShippingQuote{Subtotal: subtotal}
	if subtotal <= 0 {
		q.FreeShipping = false
		return q
	}
	if subtotal >= entities.FreeShippingThreshold {
		q.FreeShipping = true
		return q
	}
	q.Shipping = entities.ShippingCost
	return q
}
