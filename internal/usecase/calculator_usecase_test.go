package usecase

import (
	"testing"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

func TestCalculateROI(t *testing.T) {
	t.Run("typical projection", func(t *testing.T) {
		res := CalculateROI(ROIInput{SystemCost: 100000, IncentiveRate: 0.30, AnnualSavings: 14000})
		if !almostEqual(res.NetCost, 70000) {
			t.Fatalf("expected net cost 70000, got %.2f", res.NetCost)
		}
		if res.PaybackYears != 5.0 {
			t.Fatalf("expected payback 5.0, got %.1f", res.PaybackYears)
		}
		if !almostEqual(res.TwentyFiveYearRO, 14000*25-70000) {
			t.Fatalf("unexpected 25-year return: %.2f", res.TwentyFiveYearRO)
		}
	})

	t.Run("payback rounds to a tenth", func(t *testing.T) {
		res := CalculateROI(ROIInput{SystemCost: 100000, IncentiveRate: 0, AnnualSavings: 30000})
		if res.PaybackYears != 3.3 {
			t.Fatalf("expected payback 3.3, got %.2f", res.PaybackYears)
		}
	})

	t.Run("incentive rate clamps to 0..1", func(t *testing.T) {
		res := CalculateROI(ROIInput{SystemCost: 50000, IncentiveRate: 1.5, AnnualSavings: 1000})
		if res.NetCost != 0 {
			t.Fatalf("expected net cost 0 at full incentive, got %.2f", res.NetCost)
		}
		res = CalculateROI(ROIInput{SystemCost: 50000, IncentiveRate: -0.5, AnnualSavings: 1000})
		if !almostEqual(res.NetCost, 50000) {
			t.Fatalf("expected negative rate treated as 0, got %.2f", res.NetCost)
		}
	})

	t.Run("zero savings yields zero payback", func(t *testing.T) {
		res := CalculateROI(ROIInput{SystemCost: 50000, AnnualSavings: 0})
		if res.PaybackYears != 0 {
			t.Fatalf("expected payback 0, got %.2f", res.PaybackYears)
		}
	})
}

func TestQuoteShipping(t *testing.T) {
	t.Run("zero subtotal ships nothing", func(t *testing.T) {
		q := QuoteShipping(0)
		if q.Shipping != 0 || q.FreeShipping {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("below threshold pays flat rate", func(t *testing.T) {
		q := QuoteShipping(entities.FreeShippingThreshold - 0.01)
		if q.Shipping != entities.ShippingCost || q.FreeShipping {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("threshold and above is free", func(t *testing.T) {
		q := QuoteShipping(entities.FreeShippingThreshold)
		if q.Shipping != 0 || !q.FreeShipping {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}
