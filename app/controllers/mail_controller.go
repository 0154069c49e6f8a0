package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/musickeys/backend/internal/pkg/cache"
	"github.com/musickeys/backend/internal/pkg/env"
	"github.com/musickeys/backend/internal/pkg/jobqueue"
)

type welcomeEmailRequest struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// passwordResetTokenTTL bounds how long a reset link stays usable.
const passwordResetTokenTTL = time.Hour

// HandleSendWelcomeEmail queues the signup welcome mail.
func HandleSendWelcomeEmail(c *fiber.Ctx) error {
	var req welcomeEmailRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing recipient email",
		})
	}

	if err := jobqueue.EnqueueWelcomeMail(req.Name, req.To); err != nil {
		log.Errorf("[Mail] Welcome mail for %s failed: %v", req.To, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Email send failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Welcome email sent",
	})
}

// HandleRequestPasswordReset issues a single-use reset token and mails the
// reset link. The token is held in the cache until it expires.
func HandleRequestPasswordReset(c *fiber.Ctx) error {
	var req passwordResetRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing email",
		})
	}

	token := uuid.New().String()
	if err := cache.Set("pwreset:"+token, req.Email, passwordResetTokenTTL); err != nil {
		log.Warnf("[Mail] Could not cache reset token for %s: %v", req.Email, err)
	}

	baseURL := env.GetEnv("PASSWORD_RESET_URL", "http://localhost:3000/reset-password")
	resetLink := fmt.Sprintf("%s?token=%s", baseURL, token)

	if err := jobqueue.EnqueuePasswordResetMail(req.Name, req.Email, resetLink); err != nil {
		log.Errorf("[Mail] Password reset mail for %s failed: %v", req.Email, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to send reset email",
		})
	}

	log.Infof("[Mail] Password reset mail queued for %s", req.Email)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset email sent",
	})
}
