package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fibra_vendas/internal/adapter/http/handlers/mocks"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase"
	"fibra_vendas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAnalysisHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/analysis", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected analysis maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		uc.EXPECT().
			Analyze(gomock.Any(), "order-1", entities.PersonFisica, "529.982.247-25").
			Return(entities.OrderSession{}, interfaces.CreditAnalysisResult{}, usecase.ErrAnalysisRejected)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/analysis",
			bytes.NewBufferString(`{"tipo_pessoa":"F","cpf_cnpj":"529.982.247-25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("approved with tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		session := sampleSession()
		session.Draft.Step = 4
		uc.EXPECT().
			Analyze(gomock.Any(), "order-1", entities.PersonFisica, "529.982.247-25").
			Return(session, interfaces.CreditAnalysisResult{Status: "APROVADO", ValorAtivacao: 150, NomeCliente: "Maria Silva"}, nil)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/analysis", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/analysis",
			bytes.NewBufferString(`{"tipo_pessoa":"F","cpf_cnpj":"529.982.247-25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.AnalysisResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Status != string(entities.AnalysisApprovedWithTax) || body.ActivationTax != 150 {
			t.Fatalf("unexpected body %+v", body)
		}
		if body.Order.OrderID != "order-1" {
			t.Fatalf("expected order state in response, got %+v", body.Order)
		}
	})
}
