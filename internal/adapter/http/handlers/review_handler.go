package handlers

import (
	"log"
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles step 5: the single submission endpoint.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// Submit posts the complete order to the intake provider.
//
// @Summary  Submit the order
// @Tags     review
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order session id"
// @Param    payload body request.SubmitRequest true "terms acceptance"
// @Success  200 {object} response.SubmitResponse
// @Router   /orders/{order_id}/submit [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	res, err := h.usecase.Submit(c.Request.Context(), orderID, payload.AcceptTerms)
	if err != nil {
		log.Printf("[review][handler] submit failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(res))
}
