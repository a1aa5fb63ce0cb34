package handlers

import (
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PlansHandler handles step 2: plan choice, bundled apps and services.

type PlansHandler struct {
	usecase usecase.IPlansUseCase
}

func NewPlansHandler(uc usecase.IPlansUseCase) *PlansHandler {
	return &PlansHandler{usecase: uc}
}

// SelectPlan sets the plan and clears any previous app selection.
//
// @Summary  Select a plan
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order session id"
// @Param    payload body request.SelectPlanRequest true "plan id"
// @Success  200 {object} response.OrderStateResponse
// @Router   /orders/{order_id}/plan [put]
func (h *PlansHandler) SelectPlan(c *gin.Context) {
	var payload request.SelectPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SelectPlan(c.Request.Context(), c.Param("order_id"), payload.PlanID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ToggleApp flips one bundled app in or out of the selection.
func (h *PlansHandler) ToggleApp(c *gin.Context) {
	s, err := h.usecase.ToggleApp(c.Request.Context(), c.Param("order_id"), c.Param("app_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ToggleService flips one additional service in or out of the selection.
func (h *PlansHandler) ToggleService(c *gin.Context) {
	s, err := h.usecase.ToggleService(c.Request.Context(), c.Param("order_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Confirm closes step 2 and advances to the credit analysis step.
func (h *PlansHandler) Confirm(c *gin.Context) {
	s, err := h.usecase.Confirm(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
