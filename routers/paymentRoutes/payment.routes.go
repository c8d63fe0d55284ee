package paymentRoutes

import (
	controllers "techgetafrica/controllers/payment"
	"techgetafrica/middleware"
	validators "techgetafrica/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up paid enrollment and gateway callback routes.
// The webhook is unauthenticated and verified by its signature instead.
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/course/:courseId/initialize", middleware.JWTMiddleware, validators.CourseID(), controllers.InitializeCoursePayment)
	paymentGroup.Get("/list", middleware.JWTMiddleware, controllers.ListMyPayments)

	paymentGroup.Get("/verify/:reference", middleware.JWTMiddleware, controllers.VerifyCoursePayment)

	paymentGroup.Post("/webhook/paystack", controllers.PaystackWebhook)
}
