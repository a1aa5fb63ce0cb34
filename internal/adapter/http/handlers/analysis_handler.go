package handlers

import (
	"log"
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles step 3: the credit check against the captured
// contact phone.

type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// Analyze runs the credit analysis and, on approval, advances to step 4.
//
// @Summary  Run credit analysis
// @Tags     analysis
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order session id"
// @Param    payload body request.AnalysisRequest true "identity data"
// @Success  200 {object} response.AnalysisResponse
// @Router   /orders/{order_id}/analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var payload request.AnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	s, res, err := h.usecase.Analyze(c.Request.Context(), orderID, entities.PersonType(payload.TipoPessoa), payload.CpfCnpj)
	if err != nil {
		log.Printf("[analysis][handler] analyze failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnalysis(res, response.FromSession(s)))
}
