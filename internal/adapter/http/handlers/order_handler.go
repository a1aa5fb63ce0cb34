package handlers

import (
	"log"
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the session lifecycle: create, read, step navigation
// and explicit reset.

type OrderHandler struct {
	sessions usecase.IOrderSessionUseCase
}

func NewOrderHandler(sessions usecase.IOrderSessionUseCase) *OrderHandler {
	return &OrderHandler{sessions: sessions}
}

// CreateOrder starts a new capture session with the default draft.
//
// @Summary  Start an order session
// @Tags     orders
// @Produce  json
// @Success  201 {object} response.OrderStateResponse
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	s, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetOrder returns the draft with the derived gate and totals.
//
// @Summary  Read order state
// @Tags     orders
// @Produce  json
// @Param    order_id path string true "order session id"
// @Success  200 {object} response.OrderStateResponse
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	s, err := h.sessions.Get(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetStep rewinds to a reached step or advances one gate-approved step.
func (h *OrderHandler) SetStep(c *gin.Context) {
	var payload request.SetStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.sessions.SetStep(c.Request.Context(), c.Param("order_id"), payload.Step)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ResetOrder discards the draft. This is the only client-triggered way to
// clear a session.
func (h *OrderHandler) ResetOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	if err := h.sessions.Reset(c.Request.Context(), orderID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] reset order_id=%s", orderID)
	c.Status(http.StatusNoContent)
}
