package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func calculatorRouter(h *CalculatorHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/calculators/roi", h.CalculateROI)
	r.POST("/v1/calculators/shipping", h.QuoteShipping)
	return r
}

func TestCalculatorHandler_CalculateROI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCalculatorHandler()

	t.Run("missing system cost", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/roi", bytes.NewBufferString(`{"annual_savings":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		calculatorRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("projection", func(t *testing.T) {
		body := `{"system_cost":100000,"incentive_rate":0.30,"annual_savings":14000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/roi", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		calculatorRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["net_cost"] != float64(70000) {
			t.Fatalf("unexpected net cost: %v", resp)
		}
		if resp["payback_years"] != float64(5) {
			t.Fatalf("unexpected payback: %v", resp)
		}
	})
}

func TestCalculatorHandler_QuoteShipping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCalculatorHandler()

	t.Run("missing subtotal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/shipping", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		calculatorRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/shipping", bytes.NewBufferString(`{"subtotal":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		calculatorRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["shipping"] != 14.99 || resp["free_shipping"] != false {
			t.Fatalf("unexpected quote: %v", resp)
		}
	})

	t.Run("at threshold", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/shipping", bytes.NewBufferString(`{"subtotal":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		calculatorRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["shipping"] != float64(0) || resp["free_shipping"] != true {
			t.Fatalf("unexpected quote: %v", resp)
		}
	})
}
