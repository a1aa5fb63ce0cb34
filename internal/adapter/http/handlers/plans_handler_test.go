package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"fibra_vendas/internal/adapter/http/handlers/mocks"
	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlansHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIPlansUseCase) *gin.Engine {
		h := NewPlansHandler(uc)
		r := gin.New()
		r.PUT("/v1/orders/:order_id/plan", h.SelectPlan)
		r.POST("/v1/orders/:order_id/apps/:app_id", h.ToggleApp)
		r.POST("/v1/orders/:order_id/services/:service_id", h.ToggleService)
		r.POST("/v1/orders/:order_id/plan/confirm", h.Confirm)
		return r
	}

	t.Run("select plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlansUseCase(ctrl)
		uc.EXPECT().SelectPlan(gomock.Any(), "order-1", 287).Return(sampleSession(), nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/plan", bytes.NewBufferString(`{"plan_id":287}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown plan maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlansUseCase(ctrl)
		uc.EXPECT().SelectPlan(gomock.Any(), "order-1", 999).Return(entities.OrderSession{}, usecase.ErrPlanNotFound)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/plan", bytes.NewBufferString(`{"plan_id":999}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("toggle app by path param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlansUseCase(ctrl)
		uc.EXPECT().ToggleApp(gomock.Any(), "order-1", "netflix").Return(sampleSession(), nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/apps/netflix", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("toggle service by path param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlansUseCase(ctrl)
		uc.EXPECT().ToggleService(gomock.Any(), "order-1", "mesh").Return(sampleSession(), nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/services/mesh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("confirm while incomplete maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlansUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "order-1").Return(entities.OrderSession{}, usecase.ErrPlanStepIncomplete)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/plan/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
