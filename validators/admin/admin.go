package adminValidator

import (
	"strings"

	"techgetafrica/constants"
	"techgetafrica/middleware"

	"github.com/gofiber/fiber/v2"
)

// TargetUserID parses the user id path parameter
func TargetUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("userId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// RequestID parses the certificate request id path parameter
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("requestId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
		}
		c.Locals("requestID", id)
		return c.Next()
	}
}

// RoleChange validator middleware
func RoleChange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if !constants.IsValidRole(reqData.Role) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be USER, STUDENT, INSTRUCTOR or ADMIN!",
			})
		}

		c.Locals("validatedRoleChange", reqData)
		return c.Next()
	}
}

// Rejection validator middleware for certificate request rejections
func Rejection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Reason)) < 5 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"reason": "Reason must be at least 5 characters long!",
			})
		}

		c.Locals("validatedRejection", reqData)
		return c.Next()
	}
}
