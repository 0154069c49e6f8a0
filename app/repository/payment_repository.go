package repository

import (
	"github.com/musickeys/backend/app/models"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a GORM-backed payment ledger repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("created_at DESC, id DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListSuccessfulByUser(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.PaymentStatusSuccess).
		Order("created_at DESC, id DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetSuccessfulByUserAndPaymentID(userID, razorpayPaymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.
		Where("user_id = ? AND razorpay_payment_id = ? AND status = ?", userID, razorpayPaymentID, models.PaymentStatusSuccess).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}
