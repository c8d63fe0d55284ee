package userValidator

import (
	"strings"

	"techgetafrica/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfile validator middleware. All fields are optional; only the
// fields present in the body are updated.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   *string `json:"name"`
			Mobile *string `json:"mobile"`
			Bio    *string `json:"bio"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Mobile != nil && *reqData.Mobile != "" {
			if err := validate.Var(*reqData.Mobile, "numeric,min=10,max=15"); err != nil {
				errors["mobile"] = "Invalid mobile number!"
			}
		}

		if reqData.Bio != nil && len(*reqData.Bio) > 2000 {
			errors["bio"] = "Bio must be at most 2000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
