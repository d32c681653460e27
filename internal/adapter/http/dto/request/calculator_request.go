package request

// ROICalculatorRequest feeds the solar ROI projection.
type ROICalculatorRequest struct {
	SystemCost    float64 `json:"system_cost" binding:"required"`
	IncentiveRate float64 `json:"incentive_rate"`
	AnnualSavings float64 `json:"annual_savings"`
}

// ShippingQuoteRequest prices shipping for an order subtotal.
type ShippingQuoteRequest struct {
	Subtotal *float64 `json:"subtotal" binding:"required"`
}
