package courseRoutes

import (
	controllers "techgetafrica/controllers/course"
	"techgetafrica/middleware"
	validators "techgetafrica/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:courseId/lessons", middleware.JWTMiddleware, validators.CourseID(), controllers.ListCourseLessons)

	// Enrollment
	courseGroup.Post("/:courseId/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress
	courseGroup.Post("/lesson/:lessonId/progress", middleware.JWTMiddleware, validators.LessonID(), validators.RecordProgress(), controllers.RecordLessonProgress)
	courseGroup.Get("/:courseId/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Reviews
	courseGroup.Post("/:courseId/review", middleware.JWTMiddleware, validators.CourseID(), validators.Review(), controllers.CreateReview)
	courseGroup.Get("/:courseId/reviews", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseReviews)

	reviewGroup := app.Group("/review")
	reviewGroup.Put("/:reviewId", middleware.JWTMiddleware, validators.ReviewID(), validators.Review(), controllers.UpdateReview)
	reviewGroup.Post("/:reviewId/vote", middleware.JWTMiddleware, validators.ReviewID(), validators.Vote(), controllers.VoteReview)
	reviewGroup.Post("/:reviewId/report", middleware.JWTMiddleware, validators.ReviewID(), validators.Report(), controllers.ReportReview)
	reviewGroup.Delete("/:reviewId", middleware.JWTMiddleware, validators.ReviewID(), controllers.DeleteReview)

	// Quizzes
	courseGroup.Get("/lesson/:lessonId/quiz", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLessonQuiz)

	quizGroup := app.Group("/quiz")
	quizGroup.Post("/:quizId/attempt", middleware.JWTMiddleware, validators.QuizID(), validators.SubmitQuizAttempt(), controllers.SubmitQuizAttempt)

	// Certificates and enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	courseGroup.Post("/:courseId/certificate/request", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestCertificate)
}
