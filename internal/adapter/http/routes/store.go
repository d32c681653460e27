package routes

import (
	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCarts    = "/carts"
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addStoreRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, cartHandler *handlers.CartHandler, orderHandler *handlers.OrderHandler, paymentHandler *handlers.OrderPaymentHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	carts := rg.Group(PathCarts)
	{
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.POST("/:cart_id/items", cartHandler.AddItem)
		carts.PATCH("/:cart_id/items/:product_id", cartHandler.UpdateQuantity)
		carts.DELETE("/:cart_id/items/:product_id", cartHandler.RemoveItem)
		carts.DELETE("/:cart_id", cartHandler.ClearCart)
		carts.POST("/:cart_id/checkout", cartHandler.Checkout)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/confirm", orderHandler.ConfirmOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}
}
