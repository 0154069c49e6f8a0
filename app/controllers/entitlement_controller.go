package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/musickeys/backend/internal/pkg/entitlements"
)

type userPurchasesRequest struct {
	UserID string `json:"userId"`
}

type downloadAccessRequest struct {
	UserID    string `json:"userId"`
	PaymentID string `json:"paymentId"`
}

// HandleUserPurchases lists all successful purchases for a user. Purchases
// never expire, so every record comes back as active.
func HandleUserPurchases(c *fiber.Ctx) error {
	initServices()

	var req userPurchasesRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing user ID",
		})
	}

	purchases, err := entitlementService.ListPurchases(req.UserID)
	if err != nil {
		log.Errorf("[Entitlements] Failed to list purchases for %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to check purchases",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"purchases":      purchases,
		"totalPurchases": len(purchases),
	})
}

// HandleVerifyDownloadAccess grants access only on an exact successful
// (user, payment) ledger match. Mismatches are forbidden, never not-found,
// so callers cannot probe which payment ids exist.
func HandleVerifyDownloadAccess(c *fiber.Ctx) error {
	initServices()

	var req downloadAccessRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.PaymentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required parameters",
		})
	}

	payment, err := entitlementService.CheckAccess(req.UserID, req.PaymentID)
	if err != nil {
		if errors.Is(err, entitlements.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid payment or access denied",
			})
		}
		log.Errorf("[Entitlements] Access check failed for %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Verification failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Access granted",
		"payment": payment,
	})
}

// HandleDownloadFile resolves a download URL for a purchasable file. The
// caller must hold a successful purchase for the file's required plan.
func HandleDownloadFile(c *fiber.Ctx) error {
	initServices()

	fileKey := c.Params("fileKey")

	var req userPurchasesRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "User ID required",
		})
	}

	file, err := downloadFileRepo().GetByFileKey(fileKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "File not found",
			})
		}
		log.Errorf("[Downloads] Failed to load file %s: %v", fileKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Download failed"})
	}
	if !file.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "File not found",
		})
	}

	ok, err := entitlementService.HasPurchased(req.UserID, file.RequiredPlan)
	if err != nil {
		log.Errorf("[Downloads] Purchase check failed for %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Download failed"})
	}
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payment or access denied",
		})
	}

	url, err := downloadResolver.ResolveURL(c.Context(), file)
	if err != nil {
		log.Errorf("[Downloads] No source for file %s: %v", fileKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Download failed"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"downloadUrl": url,
		"fileName":    file.FileName,
	})
}
