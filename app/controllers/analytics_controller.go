package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/musickeys/backend/internal/pkg/payments"
)

// HandleListPayments returns ledger records for revenue analytics, newest
// first, filtered by time window and plan.
func HandleListPayments(c *fiber.Ctx) error {
	initServices()

	timeFilter := c.Query("timeFilter", payments.TimeFilterAll)
	planFilter := c.Query("planFilter", payments.PlanFilterAll)
	limit := c.QueryInt("limit", payments.DefaultListLimit)

	records, err := paymentAnalytics.ListPayments(timeFilter, planFilter, limit)
	if err != nil {
		log.Errorf("[Analytics] Failed to list payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch payments",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"payments": records,
		"total":    len(records),
	})
}

// HandlePaymentStats returns aggregate revenue statistics. monthlyRevenue is
// always the current calendar month regardless of the time filter.
func HandlePaymentStats(c *fiber.Ctx) error {
	initServices()

	timeFilter := c.Query("timeFilter", payments.TimeFilterAll)

	stats, err := paymentAnalytics.ComputeStats(timeFilter, payments.PlanFilterAll)
	if err != nil {
		log.Errorf("[Analytics] Failed to compute stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch payment statistics",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// HandleGetReceipt returns a single ledger record by its id.
func HandleGetReceipt(c *fiber.Ctx) error {
	initServices()

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Receipt not found",
		})
	}

	repo := paymentRepo()
	payment, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Receipt not found",
			})
		}
		log.Errorf("[Analytics] Failed to load receipt %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch receipt",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"receipt": payment,
	})
}
