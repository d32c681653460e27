package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/handlers/mocks"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_QualifyLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/qualify", h.QualifyLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/qualify", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body still qualifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Qualify(gomock.Any(), entities.LeadData{}).Return(entities.QualifiedLead{
			ID:     "lead-1",
			Result: entities.QualificationResult{Level: entities.QualificationLevelEducation, Priority: entities.LeadPriorityLow},
		}, nil)

		r := gin.New()
		r.POST("/v1/leads/qualify", h.QualifyLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/qualify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("success returns tier fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Qualify(gomock.Any(), gomock.AssignableToTypeOf(entities.LeadData{})).DoAndReturn(
			func(_ context.Context, lead entities.LeadData) (entities.QualifiedLead, error) {
				if lead.PeakDemand != 600 || lead.Industry != "cold storage" {
					t.Fatalf("unexpected lead data: %+v", lead)
				}
				return entities.QualifiedLead{
					ID:   "lead-1",
					Lead: lead,
					Result: entities.QualificationResult{
						Level:        entities.QualificationLevelEmergency,
						Score:        85,
						Priority:     entities.LeadPriorityCritical,
						ResponseTime: "4 hours",
						CloseRate:    67,
					},
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/leads/qualify", h.QualifyLead)

		body := `{"peak_demand":600,"industry":"cold storage","company_name":"NorCal Cold"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/qualify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["level"] != "emergency" || resp["priority"] != "critical" || resp["response_time"] != "4 hours" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Qualify(gomock.Any(), gomock.Any()).Return(entities.QualifiedLead{}, errors.New("db"))

		r := gin.New()
		r.POST("/v1/leads/qualify", h.QualifyLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/qualify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.QualifiedLead{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.GET("/v1/leads/:lead_id", h.GetLead)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.QualifiedLead{ID: "lead-1"}, nil)

		r := gin.New()
		r.GET("/v1/leads/:lead_id", h.GetLead)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
