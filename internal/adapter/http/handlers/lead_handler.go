package handlers

import (
	"errors"
	"net/http"

	request "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/request"
	response "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/response"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles HTTP requests for lead qualification.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// QualifyLead scores an intake-form lead, persists the qualified record and
// returns the tier assignment.
func (h *LeadHandler) QualifyLead(c *gin.Context) {
	var payload request.LeadQualifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	qualified, err := h.usecase.Qualify(c.Request.Context(), payload.ToLeadData())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQualifiedLead(qualified))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQualifiedLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
