package userRoutes

import (
	controllers "techgetafrica/controllers/userControllers"
	"techgetafrica/middleware"
	validators "techgetafrica/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and student dashboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), controllers.UpdateProfile)
	userGroup.Post("/avatar", middleware.JWTMiddleware, controllers.UploadAvatar)
	userGroup.Get("/dashboard", middleware.JWTMiddleware, controllers.GetStudentDashboard)
}
