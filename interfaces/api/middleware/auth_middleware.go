package middleware

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"tododeck/pkg/utils"
)

func sessionCookieName() string {
	if name := os.Getenv("SESSION_COOKIE_NAME"); name != "" {
		return name
	}
	return "tododeck_session"
}

// Protected validates JWT tokens and sets user context
// รับ token ได้สองทาง: Authorization header หรือ session cookie
func Protected() fiber.Handler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	cookieName := sessionCookieName()

	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromRequest(c, cookieName)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing credentials")
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, jwtSecret)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrInvalidToken:
				return utils.UnauthorizedResponse(c, "Invalid token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}

// Optional sets user context if credentials are present, but never rejects
func Optional() fiber.Handler {
	jwtSecret := os.Getenv("JWT_SECRET")
	cookieName := sessionCookieName()

	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromRequest(c, cookieName)
		if token == "" {
			return c.Next()
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, jwtSecret)
		if err != nil {
			return c.Next()
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}
