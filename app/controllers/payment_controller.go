package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/musickeys/backend/internal/pkg/payments"
	"github.com/musickeys/backend/internal/pkg/razorpay"
)

type createOrderRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PlanID    string  `json:"planId"`
	UserID    string  `json:"userId"`
	UserEmail string  `json:"userEmail"`
}

// HandleCreateOrder creates a Razorpay order for checkout. Orders are not
// payments: nothing is written to the ledger here.
func HandleCreateOrder(c *fiber.Ctx) error {
	initServices()

	if !razorpayClient.IsConfigured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Razorpay not configured. Please check your API keys.",
		})
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid amount provided",
		})
	}

	order, err := razorpayClient.CreateOrder(c.Context(), razorpay.OrderRequest{
		Amount:    req.Amount,
		Currency:  req.Currency,
		PlanID:    req.PlanID,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		log.Errorf("[Payments] Order creation failed: %v", err)
		errorMessage := "Failed to create order"
		var apiErr *razorpay.APIError
		if errors.As(err, &apiErr) {
			errorMessage = apiErr.Message
		} else if errors.Is(err, razorpay.ErrTimeout) {
			errorMessage = "Payment gateway timed out. Please try again."
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   errorMessage,
		})
	}

	log.Infof("[Payments] Order %s created (%d %s, %s)", order.ID, order.Amount, order.Currency, razorpayClient.Environment())
	return c.JSON(fiber.Map{
		"success":     true,
		"order":       order,
		"environment": razorpayClient.Environment(),
	})
}

// HandleMockCreateOrder fabricates an order for test checkouts without
// touching the gateway.
func HandleMockCreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	order := razorpay.MockOrder(req.Amount, req.Currency, req.PlanID, req.UserID)
	log.Infof("[Payments] Mock order created: %s", order.ID)
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleVerifyPayment authenticates a checkout claim and records the outcome
// in the ledger. Every call that reaches the service appends exactly one
// record, success or failure.
func HandleVerifyPayment(c *fiber.Ctx) error {
	initServices()

	var claim payments.Claim
	if err := c.BodyParser(&claim); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(claim); err != nil {
		// Incomplete claims are still recorded so the attempt shows up in
		// analytics.
		result, recErr := paymentService.RecordFault(claim, "Missing required payment verification fields")
		if recErr != nil {
			log.Errorf("[Payments] Failed to record invalid claim: %v", recErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Payment verification failed",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":   false,
			"error":     "Missing required payment verification fields",
			"paymentId": result.RecordID,
		})
	}

	result, err := paymentService.VerifyPayment(claim)
	if err != nil {
		log.Errorf("[Payments] Verification error for order %s: %v", claim.RazorpayOrderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Payment verification failed",
		})
	}

	if !result.Success {
		if result.InternalFault {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Payment verification failed",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":   false,
			"error":     result.FailureReason,
			"paymentId": result.RecordID,
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Payment verified successfully",
		"paymentId": result.RecordID,
		"orderId":   result.RazorpayOrderID,
		"planId":    claim.PlanID,
	})
}

// HandleMockVerifyPayment records a successful mock payment for test flows,
// skipping the signature check but still writing a ledger record.
func HandleMockVerifyPayment(c *fiber.Ctx) error {
	initServices()

	var claim payments.Claim
	if err := c.BodyParser(&claim); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	now := time.Now().UnixMilli()
	claim.RazorpayPaymentID = fmt.Sprintf("mock_payment_%d", now)
	claim.RazorpayOrderID = fmt.Sprintf("mock_order_%d", now)

	result, err := paymentService.RecordPrevalidated(claim)
	if err != nil {
		log.Errorf("[Payments] Mock verification failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Mock payment verification failed",
		})
	}

	log.Infof("[Payments] Mock payment verified: %s", result.RazorpayPaymentID)
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Mock payment verified successfully",
		"paymentId": result.RazorpayPaymentID,
		"orderId":   result.RazorpayOrderID,
		"planId":    claim.PlanID,
		"userId":    claim.UserID,
		"userName":  claim.UserName,
		"userEmail": claim.UserEmail,
		"planName":  claim.PlanName,
		"amount":    claim.Amount,
	})
}
