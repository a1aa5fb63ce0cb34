package handlers

import (
	"log"
	"net/http"

	request "fibra_vendas/internal/adapter/http/dto/request"
	response "fibra_vendas/internal/adapter/http/dto/response"
	"fibra_vendas/internal/usecase"
	"fibra_vendas/pkg"

	"github.com/gin-gonic/gin"
)

// ViabilityHandler handles step 1: contact info, CEP lookup and the
// coverage check.

type ViabilityHandler struct {
	usecase usecase.IViabilityUseCase
}

func NewViabilityHandler(uc usecase.IViabilityUseCase) *ViabilityHandler {
	return &ViabilityHandler{usecase: uc}
}

// ConfirmViability validates the contact phone, checks coverage for the
// address and moves the draft to step 2.
//
// @Summary  Confirm address viability
// @Tags     viability
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order session id"
// @Param    payload body request.ViabilityRequest true "contact + address"
// @Success  200 {object} response.ViabilityResponse
// @Router   /orders/{order_id}/viability [post]
func (h *ViabilityHandler) ConfirmViability(c *gin.Context) {
	var payload request.ViabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	s, res, err := h.usecase.ConfirmViability(c.Request.Context(), orderID, payload.Celular, payload.ToAddress())
	if err != nil {
		log.Printf("[viability][handler] confirm failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromViability(res, response.FromSession(s)))
}

// LookupCEP resolves a postal code into address fields.
func (h *ViabilityHandler) LookupCEP(c *gin.Context) {
	lookup, err := h.usecase.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if lookup == nil {
		appErr := pkg.NewDomainErrorSimple("CEP_NOT_FOUND", "CEP not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddressLookup(*lookup))
}
