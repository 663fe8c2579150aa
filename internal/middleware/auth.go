// internal/middleware/auth.go
package middleware

import (
	"log"
	"strings"

	"netshots-service/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Context keys for user information (string keys for Fiber Locals)
const (
	UserIDContextKey = "userID"
	EmailContextKey  = "userEmail"
)

// FirebaseAuth validates the bearer token in the Authorization header via
// the Firebase verifier.
//
// On success:
//   - sets Locals: userID, userEmail
//   - continues
//
// On failure:
//   - returns 401
func FirebaseAuth(verifier *auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		identity, err := verifier.Verify(c.Context(), token)
		if err != nil {
			log.Printf("[AUTH] ❌ REJECTED | IP=%s | Path=%s | %v", c.IP(), c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid Firebase token",
			})
		}

		c.Locals(UserIDContextKey, identity.UserID)
		c.Locals(EmailContextKey, identity.Email)
		return c.Next()
	}
}

// UserID reads the authenticated uid stashed by FirebaseAuth.
func UserID(c *fiber.Ctx) string {
	if uid, ok := c.Locals(UserIDContextKey).(string); ok {
		return uid
	}
	return ""
}

// Email reads the verified token email; may be empty.
func Email(c *fiber.Ctx) string {
	if email, ok := c.Locals(EmailContextKey).(string); ok {
		return email
	}
	return ""
}
