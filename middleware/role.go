package middleware

import (
	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that loads the authenticated user and
// rejects the request unless the user's role ranks at least as high as
// requiredRole. The loaded user is stored in c.Locals("currentUser").
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if !constants.HasPermission(user.Role, requiredRole) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}

// CurrentUser retrieves the user loaded by RequireRole, falling back to a
// lookup by the token's userId when the route skipped the role check.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if user, ok := c.Locals("currentUser").(*models.User); ok {
		return user, nil
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, fiber.ErrUnauthorized
	}
	return &user, nil
}
