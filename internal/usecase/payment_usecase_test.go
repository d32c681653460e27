package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	mock_interfaces "github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderPaymentUseCase_CreateAndApprove(t *testing.T) {
	confirmedOrder := entities.Order{ID: "ord-1", Total: 259.98, Status: entities.OrderStatusConfirmed}

	t.Run("invalid order id", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "   ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{broken`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order not confirmed", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotConfirmed) {
			t.Fatalf("expected ErrOrderNotConfirmed, got %v", err)
		}
	})

	t.Run("amount always comes from the order record", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != 259.98 {
					t.Fatalf("expected amount forced to 259.98, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "ord-1" {
					t.Fatalf("expected external_reference ord-1, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderPayment{})).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.ID != "mp-1" || p.OrderID != "ord-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		payload := json.RawMessage(`{"transaction_amount": 1.00, "payment_method_id": "visa"}`)
		created, err := uc.CreateAndApprove(context.Background(), "ord-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-1" {
			t.Fatalf("unexpected payment id: %s", created.ID)
		}
	})

	t.Run("gateway unauthorized is classified", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request is classified", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateAndApprove(context.Background(), "ord-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("mock mode bypasses the gateway and the confirmed check", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Total: 10, Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected mock payment: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), "ord-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderPaymentUseCase_GetAndList(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		uc := NewOrderPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.OrderPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrOrderPaymentNotFound) {
			t.Fatalf("expected ErrOrderPaymentNotFound, got %v", err)
		}
	})

	t.Run("list requires order id", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("list passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		uc := NewOrderPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.OrderPayment{{ID: "pay-1"}}, nil)

		payments, err := uc.ListByOrderID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 {
			t.Fatalf("expected one payment, got %d", len(payments))
		}
	})
}
