package routes

import (
	"time"

	"rentwise/handlers"
	"rentwise/middleware"
	"rentwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLeaseRoutes registers the lease lifecycle endpoints.
func RegisterLeaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	shared := r.Group("/api/leases")
	{
		shared.Use(middleware.JWTAuthMiddleware(utils.RoleLandlord, utils.RoleTenant))
		shared.GET("/:id", hb.GetLeaseHandler)
	}

	landlord := r.Group("/api/leases")
	{
		landlord.Use(middleware.JWTAuthMiddleware(utils.RoleLandlord))
		landlord.POST("", hb.AssignLeaseHandler)
		landlord.POST("/:id/renewal/approve", hb.ApproveRenewalHandler)
		landlord.POST("/:id/renewal/reject", hb.RejectRenewalHandler)
		landlord.POST("/:id/end/approve", hb.ApproveEndHandler)
		landlord.POST("/:id/end/reject", hb.RejectEndHandler)
		landlord.POST("/:id/terminate", hb.TerminateLeaseHandler)
	}

	tenant := r.Group("/api/leases")
	{
		tenant.Use(middleware.JWTAuthMiddleware(utils.RoleTenant))
		tenant.POST("/:id/renewal", hb.RequestRenewalHandler)
		tenant.POST("/:id/end", hb.RequestEndHandler)
	}
}

// RegisterBillRoutes registers the payment endpoints.
func RegisterBillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bills := r.Group("/api/bills")
	{
		bills.POST("/:id/submit", middleware.JWTAuthMiddleware(utils.RoleTenant), hb.SubmitPaymentHandler)
		bills.POST("/:id/confirm", middleware.JWTAuthMiddleware(utils.RoleLandlord), hb.ConfirmPaymentHandler)
	}
}

// RegisterScheduleRoutes registers the landlord billing schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	schedule := r.Group("/api/schedule")
	{
		schedule.Use(middleware.JWTAuthMiddleware(utils.RoleLandlord))
		schedule.GET("", hb.GetScheduleHandler)
		schedule.GET("/export", hb.ExportScheduleHandler)
	}
}

// RegisterStorageRoutes registers contract document uploads.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contracts", middleware.JWTAuthMiddleware(utils.RoleLandlord), hb.UploadContractHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterLeaseRoutes(r, hb)
	RegisterBillRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
