package middleware

import (
	"net/http"
	"testing"

	"techgetafrica/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := jwtTestApp()

	token, err := GenerateJWT(42, "Test User", "STUDENT", "test@test.test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + token, want: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", want: fiber.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, want: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/protected", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestJWTRejectsTokenFromOtherSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "first-secret"}
	token, err := GenerateJWT(7, "T", "USER", "t@test.test")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "second-secret"}
	app := jwtTestApp()

	req, err := http.NewRequest("GET", "/protected", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
