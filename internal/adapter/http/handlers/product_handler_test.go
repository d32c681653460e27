package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/handlers/mocks"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func productRouter(h *ProductHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	return r
}

func TestProductHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc)

	stock := 12
	products := []entities.Product{
		{ID: 1, Name: "Sealant", Price: 89.99, Size: entities.ProductSizeOneGallon, InStock: true, StockQuantity: &stock},
		{ID: 2, Name: "Primer", Price: 249.99, Size: entities.ProductSizeFiveGallon, InStock: true},
	}
	uc.EXPECT().List(gomock.Any()).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	w := httptest.NewRecorder()
	productRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	if resp[0]["stock_quantity"] != float64(12) {
		t.Fatalf("expected counted stock surfaced, got %v", resp[0])
	}
	if _, ok := resp[1]["stock_quantity"]; ok {
		t.Fatalf("expected untracked stock omitted, got %v", resp[1])
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil)
		w := httptest.NewRecorder()
		productRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/9", nil)
		w := httptest.NewRecorder()
		productRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Product{ID: 1, Name: "Sealant"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/1", nil)
		w := httptest.NewRecorder()
		productRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
