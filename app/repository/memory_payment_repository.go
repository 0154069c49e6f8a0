package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/musickeys/backend/app/models"
	"gorm.io/gorm"
)

// memoryPaymentRepository is a process-local ledger. It backs deployments
// without a database (PAYMENT_STORE=memory) and the unit tests. IDs are
// assigned from a monotonic sequence and never reused; history is lost on
// restart.
type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments []models.Payment
	nextID   uint
}

// NewMemoryPaymentRepository creates an in-memory payment ledger repository.
func NewMemoryPaymentRepository() PaymentRepository {
	return &memoryPaymentRepository{nextID: 1}
}

func (r *memoryPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment.ID = r.nextID
	r.nextID++
	now := time.Now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = payment.CreatedAt
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *memoryPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.payments {
		if r.payments[i].ID == id {
			p := r.payments[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryPaymentRepository) List() ([]models.Payment, error) {
	r.mu.RLock()
	out := make([]models.Payment, len(r.payments))
	copy(out, r.payments)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryPaymentRepository) ListSuccessfulByUser(userID string) ([]models.Payment, error) {
	all, _ := r.List()
	out := make([]models.Payment, 0, len(all))
	for _, p := range all {
		if p.UserID == userID && p.Status == models.PaymentStatusSuccess {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryPaymentRepository) GetSuccessfulByUserAndPaymentID(userID, razorpayPaymentID string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.payments {
		p := r.payments[i]
		if p.UserID == userID && p.RazorpayPaymentID == razorpayPaymentID && p.Status == models.PaymentStatusSuccess {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryPaymentRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.payments)), nil
}
