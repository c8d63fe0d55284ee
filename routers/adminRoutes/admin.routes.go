package adminRoutes

import (
	"techgetafrica/constants"
	controllers "techgetafrica/controllers/admin"
	"techgetafrica/middleware"
	validators "techgetafrica/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up platform administration routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware, middleware.RequireRole(constants.RoleAdmin))

	adminGroup.Get("/dashboard", controllers.GetAdminDashboard)

	// User management
	adminGroup.Get("/users", controllers.GetUserList)
	adminGroup.Put("/user/:userId/role", validators.TargetUserID(), validators.RoleChange(), controllers.ChangeUserRole)
	adminGroup.Post("/user/:userId/block", validators.TargetUserID(), controllers.BlockUser)

	// Certificate moderation
	adminGroup.Get("/certificates/pending", controllers.GetPendingCertificateRequests)
	adminGroup.Post("/certificate/:requestId/approve", validators.RequestID(), controllers.ApproveCertificateRequest)
	adminGroup.Post("/certificate/:requestId/reject", validators.RequestID(), validators.Rejection(), controllers.RejectCertificateRequest)

	// Review moderation
	adminGroup.Get("/reviews/reported", controllers.GetReportedReviews)
}
