package handlers

import (
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles step 4: remaining customer data, installation
// scheduling and billing preferences.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// UpdateCustomer merges a partial customer update into the draft.
//
// @Summary  Update customer data
// @Tags     contract
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order session id"
// @Param    payload body request.CustomerUpdateRequest true "customer fields"
// @Success  200 {object} response.OrderStateResponse
// @Router   /orders/{order_id}/customer [put]
func (h *ContractHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateCustomer(c.Request.Context(), c.Param("order_id"), payload.ToPatch())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetScheduling picks the installation date and time window.
func (h *ContractHandler) SetScheduling(c *gin.Context) {
	var payload request.SchedulingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetScheduling(c.Request.Context(), c.Param("order_id"), payload.Date, payload.TimeID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetPayment picks the payment method; an omitted due date falls back to
// the default.
func (h *ContractHandler) SetPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetPayment(c.Request.Context(), c.Param("order_id"), entities.PaymentMethod(payload.Method), payload.DueDate)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetDueDate changes the billing due date on its own.
func (h *ContractHandler) SetDueDate(c *gin.Context) {
	var payload request.DueDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetDueDate(c.Request.Context(), c.Param("order_id"), payload.DueDate)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Confirm closes step 4 and advances to the review step.
func (h *ContractHandler) Confirm(c *gin.Context) {
	s, err := h.usecase.Confirm(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
