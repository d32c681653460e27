package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/response"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/pkg"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler handles HTTP requests for order payments.

type OrderPaymentHandler struct {
	usecase usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc}
}

// CreatePaymentByOrderID creates/approves a payment using order_id in path.
func (h *OrderPaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] create start order_id=%s", orderID)
	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// GetPaymentByOrderID returns the latest payment for an order.
func (h *OrderPaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] get-by-order start order_id=%s", orderID)

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-order not-found order_id=%s", orderID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-order success order_id=%s payment_id=%s status=%s", orderID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CONFIRMED", "Order not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
