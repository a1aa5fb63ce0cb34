package handlers

import (
	"net/http"

	"fibra_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only commercial catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Plans lists the available plans.
//
// @Summary  List plans
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Plan
// @Router   /catalog/plans [get]
func (h *CatalogHandler) Plans(c *gin.Context) {
	plans, err := h.usecase.Plans(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Apps lists the bundled streaming app options.
func (h *CatalogHandler) Apps(c *gin.Context) {
	apps, err := h.usecase.Apps(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Services lists the additional paid services.
func (h *CatalogHandler) Services(c *gin.Context) {
	services, err := h.usecase.Services(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, services)
}

// Condominios lists the condominium registry for the address step.
func (h *CatalogHandler) Condominios(c *gin.Context) {
	condos, err := h.usecase.Condominios(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, condos)
}

// TimeSlots lists the installation time windows.
func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	slots, err := h.usecase.TimeSlots(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, slots)
}
