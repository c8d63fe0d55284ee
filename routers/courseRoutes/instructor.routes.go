package courseRoutes

import (
	"techgetafrica/constants"
	controllers "techgetafrica/controllers/course"
	"techgetafrica/middleware"
	validators "techgetafrica/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up course management routes for instructors
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/course",
		middleware.JWTMiddleware, middleware.RequireRole(constants.RoleInstructor))

	// Course management
	instructorGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/list", controllers.GetMyCourses)
	instructorGroup.Put("/:courseId", validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	instructorGroup.Post("/:courseId/publish", validators.CourseID(), controllers.PublishCourse)
	instructorGroup.Post("/:courseId/archive", validators.CourseID(), controllers.ArchiveCourse)
	instructorGroup.Delete("/:courseId", validators.CourseID(), controllers.DeleteCourse)

	// Lesson management
	instructorGroup.Post("/:courseId/lesson", validators.CourseID(), validators.CreateLesson(), controllers.CreateLesson)
	instructorGroup.Put("/:courseId/lesson/:lessonId", validators.CourseID(), validators.LessonID(), validators.UpdateLesson(), controllers.UpdateLesson)
	instructorGroup.Post("/:courseId/lesson/:lessonId/publish", validators.CourseID(), validators.LessonID(), controllers.PublishLesson)
	instructorGroup.Delete("/:courseId/lesson/:lessonId", validators.CourseID(), validators.LessonID(), controllers.DeleteLesson)

	// Quiz management
	instructorGroup.Post("/:courseId/lesson/:lessonId/quiz", validators.CourseID(), validators.LessonID(), validators.CreateQuiz(), controllers.CreateQuiz)

	quizGroup := app.Group("/instructor/quiz",
		middleware.JWTMiddleware, middleware.RequireRole(constants.RoleInstructor))
	quizGroup.Post("/:quizId/question", validators.QuizID(), validators.AddQuizQuestion(), controllers.AddQuizQuestion)
	quizGroup.Post("/:quizId/publish", validators.QuizID(), controllers.PublishQuiz)

	// Dashboard
	instructorGroup.Get("/dashboard", controllers.GetInstructorDashboard)
}
