package courseValidator

import (
	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

// RecordProgress validator middleware for video progress heartbeats
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PositionSec     int     `json:"position_sec"`
			WatchPercentage float64 `json:"watch_percentage"`
			TimeSpentSec    int     `json:"time_spent_sec"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PositionSec < 0 {
			errors["position_sec"] = "Position cannot be negative!"
		}

		if reqData.WatchPercentage < 0 || reqData.WatchPercentage > 100 {
			errors["watch_percentage"] = "Watch percentage must be between 0 and 100!"
		}

		if reqData.TimeSpentSec < 0 {
			errors["time_spent_sec"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
