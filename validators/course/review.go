package courseValidator

import (
	"strings"

	"techgetafrica/middleware"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
)

// Review validator middleware, shared by create and update
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// Vote validator middleware; the vote type comes from the request body
func Vote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VoteType string `json:"vote_type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		voteType := strings.ToUpper(strings.TrimSpace(reqData.VoteType))
		if voteType != courseModels.VoteHelpful && voteType != courseModels.VoteUnhelpful {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"vote_type": "Vote type must be HELPFUL or UNHELPFUL!",
			})
		}

		c.Locals("voteType", voteType)
		return c.Next()
	}
}

// Report validator middleware
func Report() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Reason)) < 5 {
			errors["reason"] = "Reason must be at least 5 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}
