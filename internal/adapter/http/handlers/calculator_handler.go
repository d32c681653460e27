package handlers

import (
	"net/http"

	request "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/request"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/pkg"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler exposes the stateless solar calculators.

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) CalculateROI(c *gin.Context) {
	var payload request.ROICalculatorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid calculator payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := usecase.CalculateROI(usecase.ROIInput{
		SystemCost:    payload.SystemCost,
		IncentiveRate: payload.IncentiveRate,
		AnnualSavings: payload.AnnualSavings,
	})

	c.JSON(http.StatusOK, result)
}

func (h *CalculatorHandler) QuoteShipping(c *gin.Context) {
	var payload request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid calculator payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, usecase.QuoteShipping(*payload.Subtotal))
}
