package courseValidator

import (
	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a positive integer path parameter into a local
func paramID(param, local, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
		}
		c.Locals(local, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return paramID("courseId", "courseID", "Invalid course id!")
}

func LessonID() fiber.Handler {
	return paramID("lessonId", "lessonID", "Invalid lesson id!")
}

func ReviewID() fiber.Handler {
	return paramID("reviewId", "reviewID", "Invalid review id!")
}

func QuizID() fiber.Handler {
	return paramID("quizId", "quizID", "Invalid quiz id!")
}
