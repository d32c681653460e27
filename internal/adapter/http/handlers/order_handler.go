package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/request"
	response "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/response"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/pkg"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ProductID, payload.Quantity, payload.OrderedBy)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Confirmed {
		confirmed, err := h.usecase.Confirm(c.Request.Context(), order.ID)
		if err != nil {
			// The pending order exists; report the confirm failure alongside it.
			log.Printf("[order][handler] immediate confirm failed order_id=%s err=%v", order.ID, err)
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		order = confirmed
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	order, err := h.usecase.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orderedBy := c.Query("ordered_by")

	orders, err := h.usecase.ListByOrderedBy(c.Request.Context(), orderedBy)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderedBy), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPending):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PENDING", "Order is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for this order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
