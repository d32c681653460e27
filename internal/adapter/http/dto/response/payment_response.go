package response

import (
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

type OrderPaymentResponse struct {
	PaymentID       string                 `json:"payment_id"`
	OrderID         string                 `json:"order_id"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:       p.ID,
		OrderID:         p.OrderID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
}
