package notificationValidator

import (
	"strings"

	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

var priorities = map[string]bool{"LOW": true, "NORMAL": true, "HIGH": true}

// NotificationID parses the notification id path parameter
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("notificationId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
		}
		c.Locals("notificationID", id)
		return c.Next()
	}
}

// Announcement validator middleware for course-wide announcements
func Announcement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Message  string `json:"message"`
			Priority string `json:"priority"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(strings.TrimSpace(reqData.Message)) < 5 {
			errors["message"] = "Message must be at least 5 characters long!"
		}

		if reqData.Priority == "" {
			reqData.Priority = "NORMAL"
		} else {
			reqData.Priority = strings.ToUpper(reqData.Priority)
			if !priorities[reqData.Priority] {
				errors["priority"] = "Priority must be LOW, NORMAL or HIGH!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
