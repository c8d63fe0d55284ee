package courseValidator

import (
	"strings"

	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title must be at least 3 characters long!",
			})
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// AddQuizQuestion validator middleware. A question needs at least two
// options and exactly one correct one.
func AddQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt     string `json:"prompt"`
			OrderIndex int    `json:"order_index"`
			Options    []struct {
				OptionText string `json:"option_text"`
				IsCorrect  bool   `json:"is_correct"`
			} `json:"options"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Prompt)) < 5 {
			errors["prompt"] = "Prompt must be at least 5 characters long!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "A question needs at least two options!"
		} else {
			correct := 0
			for _, option := range reqData.Options {
				if strings.TrimSpace(option.OptionText) == "" {
					errors["options"] = "Option text cannot be empty!"
				}
				if option.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errors["options"] = "Exactly one option must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizQuestion", reqData)
		return c.Next()
	}
}

// SubmitQuizAttempt validator middleware
func SubmitQuizAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SelectedOptionIDs []uint `json:"selected_option_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.SelectedOptionIDs) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"selected_option_ids": "Select at least one option!",
			})
		}

		c.Locals("validatedQuizAttempt", reqData)
		return c.Next()
	}
}
