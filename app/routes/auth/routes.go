package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"educore-schools/app/config"
	"educore-schools/app/database"
)

// SetupAuthRoutes sets up the auth routes
func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", AuthMiddleware, LogoutAPI)
	authAPI.Post("/change-password", AuthMiddleware, ChangePasswordAPI)
}

// AuthMiddleware validates the JWT carried in the cookie or bearer header
// and checks the session has not been revoked.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	if _, err := database.GetSessionByID(config.GetDB(), claims.SessionID); err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Session expired"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	c.Locals("session_id", claims.SessionID)
	return c.Next()
}
