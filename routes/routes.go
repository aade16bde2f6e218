package routes

import (
	"net/http"

	"ayurchain/auth"
	"ayurchain/batches"
	"ayurchain/farmers"
	"ayurchain/home"
	"ayurchain/middleware"
	"ayurchain/models"
	"ayurchain/profile"
	"ayurchain/purchases"
	"ayurchain/ratelim"
	"ayurchain/utils"
	"ayurchain/verify"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/v1/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/v1/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/v1/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/v1/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/v1/profile", middleware.Authenticate(profile.EditProfile))

	router.POST("/api/v1/farmer/details", middleware.RequireRole(models.RoleFarmer, profile.SubmitFarmerDetails))
	router.GET("/api/v1/farmer/details", middleware.Authenticate(profile.GetFarmerDetails))
	router.POST("/api/v1/company/details", middleware.RequireRole(models.RoleCompany, profile.SubmitCompanyDetails))
}

// RegisterBatchRoutes wires the batch lifecycle: farmer creation, admin
// approval, and the public marketplace listing.
func RegisterBatchRoutes(router *httprouter.Router) {
	router.POST("/api/v1/batches", middleware.RequireRole(models.RoleFarmer, batches.CreateBatch))
	router.GET("/api/v1/batches/mine", middleware.RequireRole(models.RoleFarmer, batches.GetMyBatches))
	router.GET("/api/v1/batches/available", middleware.OptionalAuth(batches.GetAvailableBatches))

	router.GET("/api/v1/admin/batches/pending", middleware.RequireRole(models.RoleAdmin, batches.GetPendingBatches))
	router.POST("/api/v1/admin/batches/:id/approve", middleware.RequireRole(models.RoleAdmin, batches.ApproveBatch))
}

func AddFarmerApprovalRoutes(router *httprouter.Router) {
	router.GET("/api/v1/admin/farmers/pending", middleware.RequireRole(models.RoleAdmin, farmers.GetPendingFarmers))
	router.POST("/api/v1/admin/farmers/:id/approve", middleware.RequireRole(models.RoleAdmin, farmers.ApproveFarmer))
	router.POST("/api/v1/admin/farmers/:id/reject", middleware.RequireRole(models.RoleAdmin, farmers.RejectFarmer))
}

func AddPurchaseRoutes(router *httprouter.Router) {
	router.POST("/api/v1/purchases", middleware.RequireRole(models.RoleCompany, purchases.RecordPurchase))
	router.GET("/api/v1/purchases/mine", middleware.RequireRole(models.RoleCompany, purchases.GetMyPurchases))
	router.GET("/api/v1/admin/purchases", middleware.RequireRole(models.RoleAdmin, purchases.GetAllPurchases))
}

func AddVerifyRoutes(router *httprouter.Router) {
	router.GET("/api/v1/verify/:batchNumber", ratelim.RateLimit(verify.VerifyBatch))
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/home/:apiRoute", middleware.OptionalAuth(home.GetHomeContent))
}

func AddUtilityRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/v1/upload/images", rateLimiter.Limit(middleware.Authenticate(utils.UploadImages)))
}
