package mediaRoutes

import (
	"techgetafrica/constants"
	controllers "techgetafrica/controllers/media"
	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes sets up course asset upload routes
func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/media",
		middleware.JWTMiddleware, middleware.RequireRole(constants.RoleInstructor))

	mediaGroup.Post("/upload", controllers.UploadMedia)
}
