package entitlements

import (
	"errors"
	"time"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/app/repository"
	"gorm.io/gorm"
)

// ErrAccessDenied is returned when no successful ledger record matches the
// exact (user, payment) pair. Callers map it to a forbidden response, never
// not-found, to avoid leaking which payment ids exist.
var ErrAccessDenied = errors.New("invalid payment or access denied")

// Purchase is the display summary of a successful payment record. All
// purchases grant lifetime access, so Status is always "active".
type Purchase struct {
	ID           uint      `json:"id"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	PlanName     string    `json:"planName"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	PaymentID    string    `json:"paymentId"`
	OrderID      string    `json:"orderId"`
	PurchaseDate time.Time `json:"purchaseDate"`
	PlanDuration string    `json:"planDuration"`
	Status       string    `json:"status"`
}

// Service answers whether a user holds a validated purchase. It only reads
// the ledger.
type Service struct {
	repo repository.PaymentRepository
}

// NewService creates an entitlement service over the given ledger.
func NewService(repo repository.PaymentRepository) *Service {
	return &Service{repo: repo}
}

// CheckAccess requires an exact successful ledger match on userID and the
// gateway payment id. Any mismatch yields ErrAccessDenied.
func (s *Service) CheckAccess(userID, razorpayPaymentID string) (*models.Payment, error) {
	payment, err := s.repo.GetSuccessfulByUserAndPaymentID(userID, razorpayPaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	return payment, nil
}

// HasPurchased reports whether the user holds any successful record for the
// given plan key or gateway payment id. Access never expires.
func (s *Service) HasPurchased(userID, planOrPaymentID string) (bool, error) {
	purchases, err := s.repo.ListSuccessfulByUser(userID)
	if err != nil {
		return false, err
	}
	for _, p := range purchases {
		if p.Plan == planOrPaymentID || p.RazorpayPaymentID == planOrPaymentID {
			return true, nil
		}
	}
	return false, nil
}

// ListPurchases returns all successful purchases for the user, newest first.
func (s *Service) ListPurchases(userID string) ([]Purchase, error) {
	payments, err := s.repo.ListSuccessfulByUser(userID)
	if err != nil {
		return nil, err
	}

	purchases := make([]Purchase, 0, len(payments))
	for _, p := range payments {
		purchases = append(purchases, Purchase{
			ID:           p.ID,
			UserID:       p.UserID,
			UserName:     p.UserName,
			UserEmail:    p.UserEmail,
			PlanName:     p.PlanName,
			Amount:       p.Amount,
			Currency:     p.Currency,
			PaymentID:    p.RazorpayPaymentID,
			OrderID:      p.RazorpayOrderID,
			PurchaseDate: p.CreatedAt,
			PlanDuration: p.PlanDuration,
			Status:       "active",
		})
	}
	return purchases, nil
}
