package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/app/repository"
)

type recordingNotifier struct {
	recorded []*models.Payment
}

func (n *recordingNotifier) PaymentRecorded(payment *models.Payment) {
	n.recorded = append(n.recorded, payment)
}

func signClaim(orderID, paymentID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func validClaim(secret []byte) Claim {
	return Claim{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: signClaim("order_abc", "pay_abc", secret),
		PlanID:            "basic",
		UserID:            "user-1",
		UserName:          "Asha",
		UserEmail:         "",
		Amount:            499,
	}
}

func TestVerifyPaymentSuccess(t *testing.T) {
	secret := []byte("test-secret")
	repo := repository.NewMemoryPaymentRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, secret, notifier)

	result, err := svc.VerifyPayment(validClaim(secret))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("VerifyPayment() success = false, reason = %q", result.FailureReason)
	}
	if result.RecordID == 0 {
		t.Error("VerifyPayment() did not assign a record id")
	}

	record, err := repo.GetByID(result.RecordID)
	if err != nil {
		t.Fatalf("GetByID(%d) error = %v", result.RecordID, err)
	}
	if record.Status != models.PaymentStatusSuccess {
		t.Errorf("record status = %q, want success", record.Status)
	}
	if record.FailureReason != nil {
		t.Errorf("record failure reason = %q, want nil", *record.FailureReason)
	}
	if record.Currency != "INR" || record.PaymentMethod != "razorpay" {
		t.Errorf("record currency/method = %q/%q", record.Currency, record.PaymentMethod)
	}
	if record.PlanName != "Basic Piano Course" || record.PlanDuration != "Lifetime" {
		t.Errorf("plan defaults not applied: %q / %q", record.PlanName, record.PlanDuration)
	}

	if len(notifier.recorded) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(notifier.recorded))
	}
	if notifier.recorded[0].ID != result.RecordID {
		t.Errorf("notifier got record %d, want %d", notifier.recorded[0].ID, result.RecordID)
	}
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	secret := []byte("test-secret")
	repo := repository.NewMemoryPaymentRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, secret, notifier)

	claim := validClaim(secret)
	claim.RazorpaySignature = signClaim("order_abc", "pay_abc", []byte("wrong-secret"))

	result, err := svc.VerifyPayment(claim)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.Success {
		t.Fatal("VerifyPayment() accepted a forged signature")
	}
	if result.FailureReason != ReasonInvalidSignature {
		t.Errorf("failure reason = %q, want %q", result.FailureReason, ReasonInvalidSignature)
	}
	if result.InternalFault {
		t.Error("signature mismatch reported as internal fault")
	}

	// The failed attempt must still land in the ledger.
	record, err := repo.GetByID(result.RecordID)
	if err != nil {
		t.Fatalf("GetByID(%d) error = %v", result.RecordID, err)
	}
	if record.Status != models.PaymentStatusFailed {
		t.Errorf("record status = %q, want failed", record.Status)
	}
	if record.FailureReason == nil || *record.FailureReason != ReasonInvalidSignature {
		t.Errorf("record failure reason = %v, want %q", record.FailureReason, ReasonInvalidSignature)
	}

	if len(notifier.recorded) != 0 {
		t.Errorf("notifier called for a failed payment")
	}
}

func TestVerifyPaymentNoDeduplication(t *testing.T) {
	secret := []byte("test-secret")
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo, secret, nil)

	claim := validClaim(secret)
	first, err := svc.VerifyPayment(claim)
	if err != nil {
		t.Fatalf("first VerifyPayment() error = %v", err)
	}
	second, err := svc.VerifyPayment(claim)
	if err != nil {
		t.Fatalf("second VerifyPayment() error = %v", err)
	}

	if first.RecordID == second.RecordID {
		t.Error("duplicate claim reused the same ledger record")
	}
	count, _ := repo.Count()
	if count != 2 {
		t.Errorf("ledger count = %d, want 2 (one append per call)", count)
	}
}

func TestVerifyPaymentNotConfigured(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo, nil, nil)

	_, err := svc.VerifyPayment(validClaim([]byte("ignored")))
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("VerifyPayment() error = %v, want ErrNotConfigured", err)
	}
	count, _ := repo.Count()
	if count != 0 {
		t.Errorf("ledger count = %d, want 0 when unconfigured", count)
	}
}

func TestVerifyPaymentNegativeAmount(t *testing.T) {
	secret := []byte("test-secret")
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo, secret, nil)

	claim := validClaim(secret)
	claim.Amount = -5

	result, err := svc.VerifyPayment(claim)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.Success || !result.InternalFault {
		t.Errorf("negative amount: success=%v internalFault=%v, want false/true", result.Success, result.InternalFault)
	}
	count, _ := repo.Count()
	if count != 1 {
		t.Errorf("ledger count = %d, want 1", count)
	}
}

func TestRecordFaultDefaults(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo, []byte("secret"), nil)

	result, err := svc.RecordFault(Claim{}, "")
	if err != nil {
		t.Fatalf("RecordFault() error = %v", err)
	}
	if result.Success {
		t.Error("RecordFault() reported success")
	}
	if !result.InternalFault {
		t.Error("RecordFault() did not flag an internal fault")
	}
	if result.FailureReason != "Payment verification failed" {
		t.Errorf("default failure reason = %q", result.FailureReason)
	}

	record, err := repo.GetByID(result.RecordID)
	if err != nil {
		t.Fatalf("GetByID(%d) error = %v", result.RecordID, err)
	}
	if record.UserID != "unknown" || record.Plan != "unknown" {
		t.Errorf("fault record defaults = %q/%q, want unknown/unknown", record.UserID, record.Plan)
	}
	if record.UserName != "User" {
		t.Errorf("fault record user name = %q, want User", record.UserName)
	}
}

func TestRecordPrevalidated(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, nil, notifier)

	result, err := svc.RecordPrevalidated(Claim{
		RazorpayOrderID:   "mock_order_1",
		RazorpayPaymentID: "mock_payment_1",
		PlanID:            "styles-tones",
		UserID:            "user-2",
		Amount:            999,
	})
	if err != nil {
		t.Fatalf("RecordPrevalidated() error = %v", err)
	}
	if !result.Success {
		t.Fatal("RecordPrevalidated() success = false")
	}

	record, _ := repo.GetByID(result.RecordID)
	if record.PlanName != "Styles & Tones Package" {
		t.Errorf("plan name = %q, want Styles & Tones Package", record.PlanName)
	}
	if len(notifier.recorded) != 1 {
		t.Errorf("notifier called %d times, want 1", len(notifier.recorded))
	}
}
