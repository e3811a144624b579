package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/models"
)

const contextUserKey = "current_user"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func subscriptionRequired(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
		"error": message,
		"code":  "subscription_required",
	})
}

func rateLimitExceeded(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": "rate limit exceeded",
		"code":  "rate_limit_exceeded",
	})
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}
