package payments

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/app/repository"
)

// Notifier receives successfully recorded payments for asynchronous
// follow-up (confirmation mail). Implementations must not block.
type Notifier interface {
	PaymentRecorded(payment *models.Payment)
}

// Service is the single orchestration point that turns a payment claim into
// a permanent ledger entry. It is the only writer of the payment ledger.
type Service struct {
	repo     repository.PaymentRepository
	secret   []byte
	notifier Notifier
}

// NewService creates a verification service. notifier may be nil.
func NewService(repo repository.PaymentRepository, secret []byte, notifier Notifier) *Service {
	return &Service{repo: repo, secret: secret, notifier: notifier}
}

// VerifyPayment authenticates a claim against the gateway signature and
// appends exactly one ledger record regardless of outcome. Duplicate claims
// produce duplicate records: there is no deduplication on
// (razorpay_order_id, razorpay_payment_id).
func (s *Service) VerifyPayment(claim Claim) (*VerifyResult, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}

	if claim.Amount < 0 {
		// Negative amounts are rejected by the boundary validator; if one
		// slips through treat it as an internal fault, not a signature
		// failure.
		return s.RecordFault(claim, fmt.Sprintf("invalid amount %v", claim.Amount))
	}

	if !VerifySignature(claim.RazorpayOrderID, claim.RazorpayPaymentID, claim.RazorpaySignature, s.secret) {
		record := buildRecord(claim, models.PaymentStatusFailed, ReasonInvalidSignature)
		if err := s.repo.Create(record); err != nil {
			return nil, fmt.Errorf("failed to record signature failure: %w", err)
		}
		log.Warnf("[Payments] Signature mismatch for order %s stored as record %d", claim.RazorpayOrderID, record.ID)
		return &VerifyResult{
			Success:           false,
			RecordID:          record.ID,
			RazorpayOrderID:   record.RazorpayOrderID,
			RazorpayPaymentID: record.RazorpayPaymentID,
			FailureReason:     ReasonInvalidSignature,
		}, nil
	}

	record := buildRecord(claim, models.PaymentStatusSuccess, "")
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record verified payment: %w", err)
	}
	log.Infof("[Payments] Verified payment %s stored as record %d", claim.RazorpayPaymentID, record.ID)

	// Fire and forget: the confirmation mail must never block or alter the
	// verification response.
	if s.notifier != nil {
		s.notifier.PaymentRecorded(record)
	}

	return &VerifyResult{
		Success:           true,
		RecordID:          record.ID,
		RazorpayOrderID:   record.RazorpayOrderID,
		RazorpayPaymentID: record.RazorpayPaymentID,
	}, nil
}

// RecordPrevalidated appends a successful record for a claim that was
// authenticated out of band (mock checkout flows). It still notifies like a
// real verification.
func (s *Service) RecordPrevalidated(claim Claim) (*VerifyResult, error) {
	record := buildRecord(claim, models.PaymentStatusSuccess, "")
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record prevalidated payment: %w", err)
	}
	log.Infof("[Payments] Prevalidated payment %s stored as record %d", claim.RazorpayPaymentID, record.ID)
	if s.notifier != nil {
		s.notifier.PaymentRecorded(record)
	}
	return &VerifyResult{
		Success:           true,
		RecordID:          record.ID,
		RazorpayOrderID:   record.RazorpayOrderID,
		RazorpayPaymentID: record.RazorpayPaymentID,
	}, nil
}

// RecordFault appends a failed ledger record for a claim that hit an
// unexpected fault before it could be classified. Losing the attempt from
// the ledger would be worse than an imprecise failure reason.
func (s *Service) RecordFault(claim Claim, reason string) (*VerifyResult, error) {
	if reason == "" {
		reason = "Payment verification failed"
	}
	record := buildRecord(claim, models.PaymentStatusFailed, reason)
	if record.UserID == "" {
		record.UserID = "unknown"
	}
	if record.Plan == "" {
		record.Plan = "unknown"
	}
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record verification fault: %w", err)
	}
	log.Errorf("[Payments] Verification fault stored as record %d: %s", record.ID, reason)
	return &VerifyResult{
		Success:           false,
		RecordID:          record.ID,
		RazorpayOrderID:   record.RazorpayOrderID,
		RazorpayPaymentID: record.RazorpayPaymentID,
		FailureReason:     reason,
		InternalFault:     true,
	}, nil
}

func buildRecord(claim Claim, status, failureReason string) *models.Payment {
	userName := claim.UserName
	if userName == "" {
		userName = "User"
	}
	planName := claim.PlanName
	if planName == "" {
		planName = DefaultPlanName(claim.PlanID)
	}
	planDuration := claim.PlanDuration
	if planDuration == "" {
		planDuration = DefaultPlanDuration(claim.PlanID)
	}

	record := &models.Payment{
		UserID:            claim.UserID,
		UserName:          userName,
		UserEmail:         claim.UserEmail,
		Amount:            claim.Amount,
		Currency:          models.PaymentCurrencyINR,
		Plan:              claim.PlanID,
		PlanName:          planName,
		PlanDuration:      planDuration,
		Status:            status,
		PaymentMethod:     models.PaymentMethodRazorpay,
		RazorpayOrderID:   claim.RazorpayOrderID,
		RazorpayPaymentID: claim.RazorpayPaymentID,
	}
	if failureReason != "" {
		record.FailureReason = &failureReason
	}
	return record
}
