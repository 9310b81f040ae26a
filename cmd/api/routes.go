package main

import (
	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/handler"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
)

// apiHandlers bundles everything mounted under the API prefix.
type apiHandlers struct {
	auth         *handler.AuthHandler
	logistics    *handler.LogisticsHandler
	production   *handler.ProductionHandler
	workOrder    *handler.WorkOrderHandler
	dashboard    *handler.DashboardHandler
	report       *handler.ReportHandler
	user         *handler.UserHandler
	settings     *handler.SettingsHandler
	notification *handler.NotificationHandler
}

// registerAPIRoutes mounts the API surface. Domain routes stay open so the
// frontend can call them before a session exists; settings carries per-user
// state and sits behind the JWT guard.
func registerAPIRoutes(r *gin.Engine, prefix string, h apiHandlers, requireJWT gin.HandlerFunc) {
	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	api.POST("/register", h.auth.Register)
	api.POST("/login", h.auth.Login)
	api.POST("/forgot-password", h.auth.ForgotPassword)
	api.POST("/reset-password", h.auth.ResetPassword)

	api.GET("/logistics", h.logistics.List)
	api.POST("/logistics", h.logistics.Submit)
	api.GET("/tracking", h.logistics.ListTracking)
	api.PUT("/tracking", h.logistics.UpdateTracking)

	api.GET("/workorder", h.workOrder.List)
	api.POST("/workorder", h.workOrder.Submit)
	api.PUT("/workorder/:id", h.workOrder.UpdateStatus)

	api.GET("/production", h.production.List)
	api.POST("/production", h.production.Submit)
	api.PUT("/production", h.production.Update)
	api.DELETE("/production", h.production.Delete)

	api.GET("/logistics-summary", h.dashboard.LogisticsSummary)
	api.GET("/module-chart", h.dashboard.ModuleChart)
	api.GET("/fulfillment-rate", h.dashboard.FulfillmentRate)

	api.POST("/reports", h.report.Download)

	api.GET("/user/:email", h.user.GetProfile)
	api.PUT("/user/:email", h.user.UpdateProfile)
	api.POST("/upload", h.user.Upload)

	api.GET("/notifications", h.notification.List)

	protected := api.Group("")
	protected.Use(requireJWT)
	protected.GET("/settings", h.settings.Get)
	protected.POST("/settings", h.settings.Save)
}
