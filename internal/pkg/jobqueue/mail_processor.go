package jobqueue

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/internal/pkg/mail"
)

// processPaymentMailJob sends the purchase confirmation mail for a verified
// payment. Jobs without a recipient address complete without sending.
func (q *Queue) processPaymentMailJob(job *Job) error {
	payload, err := PaymentMailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid payment mail payload: %w", err)
	}

	if payload.UserEmail == "" {
		log.Warnf("[JobQueue] Payment %d has no email address, skipping confirmation mail", payload.PaymentID)
		return nil
	}

	subject, body := mail.PaymentConfirmation(&models.Payment{
		ID:                payload.PaymentID,
		UserName:          payload.UserName,
		UserEmail:         payload.UserEmail,
		PlanName:          payload.PlanName,
		PlanDuration:      payload.PlanDuration,
		Amount:            payload.Amount,
		Currency:          payload.Currency,
		RazorpayOrderID:   payload.RazorpayOrderID,
		RazorpayPaymentID: payload.RazorpayPaymentID,
	})

	if err := mail.SendMail(payload.UserEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send confirmation mail for payment %d: %w", payload.PaymentID, err)
	}
	return nil
}

// processWelcomeMailJob sends the signup welcome mail
func (q *Queue) processWelcomeMailJob(job *Job) error {
	payload, err := WelcomeMailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid welcome mail payload: %w", err)
	}
	if payload.UserEmail == "" {
		return fmt.Errorf("welcome mail job %s has no recipient", job.ID)
	}

	subject, body := mail.Welcome(payload.UserName)
	if err := mail.SendMail(payload.UserEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}
	return nil
}

// processPasswordResetMailJob sends the password reset mail
func (q *Queue) processPasswordResetMailJob(job *Job) error {
	payload, err := PasswordResetMailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid password reset mail payload: %w", err)
	}
	if payload.UserEmail == "" {
		return fmt.Errorf("password reset mail job %s has no recipient", job.ID)
	}

	subject, body := mail.PasswordReset(payload.UserName, payload.ResetLink)
	if err := mail.SendMail(payload.UserEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send password reset mail: %w", err)
	}
	return nil
}
