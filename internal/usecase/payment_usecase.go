package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"
)

var (
	ErrOrderPaymentNotFound       = errors.New("order payment not found")
	ErrInvalidPaymentOrderID      = errors.New("invalid order_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrOrderNotConfirmed          = errors.New("order not confirmed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IOrderPaymentUseCase encapsulates the "create and process payment" behavior
// for a confirmed order. The amount charged always comes from the order record
// in DB, never from the caller's payload.

type IOrderPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo      interfaces.IOrderPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *OrderPaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_order_id=%q payload_len=%d", orderID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidPaymentOrderID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", orderID)
			return entities.OrderPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, errors.New("payment gateway not configured")
	}
	if u.orderRepo == nil {
		return entities.OrderPayment{}, errors.New("order repository not configured")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	if !mockMode && order.Status != entities.OrderStatusConfirmed {
		log.Printf("[payment][usecase] order not confirmed order_id=%s status=%s", orderID, order.Status)
		return entities.OrderPayment{}, ErrOrderNotConfirmed
	}
	log.Printf("[payment][usecase] order loaded order_id=%s status=%s total=%.2f", orderID, order.Status, order.Total)

	// Link the provider payment back to the order and force the charged
	// amount to the order total from DB.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Order %s", orderID)
		}
		reqMap["transaction_amount"] = order.Total
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway order_id=%s", orderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(payload) > 0 && json.Valid(payload) {
			_ = json.Unmarshal(payload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.OrderPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
			if isGatewayUnauthorized(err) {
				return entities.OrderPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.OrderPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.OrderPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	p := entities.OrderPayment{
		ID:                 providerPaymentID,
		OrderID:            orderID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.OrderPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

func (u *OrderPaymentUseCase) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.ID == "" {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	return p, nil
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
