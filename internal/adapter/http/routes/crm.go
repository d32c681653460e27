package routes

import (
	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads       = "/leads"
	PathCalculators = "/calculators"
)

func addCRMRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, calculatorHandler *handlers.CalculatorHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("/qualify", leadHandler.QualifyLead)
		leads.GET("/:id", leadHandler.GetLead)
	}

	calculators := rg.Group(PathCalculators)
	{
		calculators.POST("/roi", calculatorHandler.CalculateROI)
		calculators.POST("/shipping", calculatorHandler.QuoteShipping)
	}
}
