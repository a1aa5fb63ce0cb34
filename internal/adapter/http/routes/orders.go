package routes

import (
	"fibra_vendas/internal/adapter/http/handlers"
	"fibra_vendas/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathCatalog = "/catalog"
	PathAddress = "/address"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, viabilityHandler *handlers.ViabilityHandler, plansHandler *handlers.PlansHandler, analysisHandler *handlers.AnalysisHandler, contractHandler *handlers.ContractHandler, reviewHandler *handlers.ReviewHandler) {
	orders := rg.Group(PathOrders)
	{
		// Session lifecycle.
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.DELETE("/:order_id", orderHandler.ResetOrder)
		orders.POST("/:order_id/step", orderHandler.SetStep)

		// Step 1: contact + coverage.
		orders.POST("/:order_id/viability", viabilityHandler.ConfirmViability)

		// Step 2: plan, apps, services.
		orders.PUT("/:order_id/plan", plansHandler.SelectPlan)
		orders.POST("/:order_id/apps/:app_id", plansHandler.ToggleApp)
		orders.POST("/:order_id/services/:service_id", plansHandler.ToggleService)
		orders.POST("/:order_id/plan/confirm", plansHandler.Confirm)

		// Step 3: credit analysis, shared-secret protected.
		orders.POST("/:order_id/analysis", middleware.RequireInternalKey(), analysisHandler.Analyze)

		// Step 4: customer data, scheduling, billing.
		orders.PUT("/:order_id/customer", contractHandler.UpdateCustomer)
		orders.PUT("/:order_id/scheduling", contractHandler.SetScheduling)
		orders.PUT("/:order_id/payment", contractHandler.SetPayment)
		orders.PUT("/:order_id/due-date", contractHandler.SetDueDate)
		orders.POST("/:order_id/contract/confirm", contractHandler.Confirm)

		// Step 5: submission.
		orders.POST("/:order_id/submit", reviewHandler.Submit)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, viabilityHandler *handlers.ViabilityHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/plans", catalogHandler.Plans)
		catalog.GET("/apps", catalogHandler.Apps)
		catalog.GET("/services", catalogHandler.Services)
		catalog.GET("/condominios", catalogHandler.Condominios)
		catalog.GET("/slots", catalogHandler.TimeSlots)
	}

	rg.GET(PathAddress+"/:cep", viabilityHandler.LookupCEP)
}
