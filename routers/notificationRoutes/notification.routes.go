package notificationRoutes

import (
	"techgetafrica/constants"
	controllers "techgetafrica/controllers/notification"
	"techgetafrica/middleware"
	courseValidators "techgetafrica/validators/course"
	validators "techgetafrica/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up in-app notification routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification", middleware.JWTMiddleware)

	notificationGroup.Get("/list", controllers.GetNotifications)
	notificationGroup.Post("/read-all", controllers.MarkAllNotificationsRead)
	notificationGroup.Post("/:notificationId/read", validators.NotificationID(), controllers.MarkNotificationRead)

	announceGroup := app.Group("/course", middleware.JWTMiddleware, middleware.RequireRole(constants.RoleInstructor))
	announceGroup.Post("/:courseId/announce", courseValidators.CourseID(), validators.Announcement(), controllers.SendCourseAnnouncement)
}
