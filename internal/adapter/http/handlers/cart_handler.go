package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/request"
	response "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/dto/response"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the cart ledger.
//
// Validation rejections (out of stock, quantity ceiling) are returned with
// their own error codes so callers can tell them apart from service failures.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	cartID := c.Param("cart_id")

	var payload request.CartAddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.AddItem(c.Request.Context(), cartID, payload.ProductID, payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !outcome.Added {
		log.Printf("[cart][handler] add rejected cart_id=%s product_id=%d reason=%s", cartID, payload.ProductID, outcome.Reason)
		appErr := mapAddRejection(outcome.Reason)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CartAddItemResponse{Added: true, Cart: response.FromCart(outcome.Cart)})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartID := c.Param("cart_id")
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	var payload request.CartUpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateQuantity(c.Request.Context(), cartID, productID, *payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.RemoveItem(c.Request.Context(), cartID, productID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("cart_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	cartID := c.Param("cart_id")

	var payload request.CartCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	orders, err := h.usecase.Checkout(c.Request.Context(), cartID, payload.OrderedBy)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrders(orders))
}

func mapAddRejection(reason usecase.AddItemReason) *pkg.AppError {
	switch reason {
	case usecase.AddReasonOutOfStock:
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product is out of stock", http.StatusConflict)
	case usecase.AddReasonQuantityExceeded:
		return pkg.NewDomainErrorSimple("QUANTITY_EXCEEDED", "Requested quantity exceeds available stock", http.StatusConflict)
	default:
		return pkg.NewDomainErrorSimple("ADD_REJECTED", "Item could not be added", http.StatusConflict)
	}
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidOrderedBy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
