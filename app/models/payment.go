package models

import "time"

const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodRazorpay = "razorpay"
	PaymentCurrencyINR    = "INR"
)

// Payment is one verification attempt's immutable record in the ledger.
// Rows are append-only: the verification service is the sole writer and no
// row is updated or deleted after insertion. UpdatedAt therefore always
// equals CreatedAt.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(191);not null;index:idx_payments_user_status,priority:1" json:"userId"`
	UserName          string    `gorm:"type:varchar(200);default:''" json:"userName"`
	UserEmail         string    `gorm:"type:varchar(200);default:''" json:"userEmail"`
	Amount            float64   `gorm:"not null;default:0" json:"amount"`
	Currency          string    `gorm:"type:varchar(8);not null;default:'INR'" json:"currency"`
	Plan              string    `gorm:"type:varchar(50);not null;index" json:"plan"`
	PlanName          string    `gorm:"type:varchar(100);not null;default:''" json:"planName"`
	PlanDuration      string    `gorm:"type:varchar(50);not null;default:''" json:"planDuration"`
	Status            string    `gorm:"type:varchar(16);not null;index:idx_payments_user_status,priority:2" json:"status"`
	PaymentMethod     string    `gorm:"type:varchar(20);not null;default:'razorpay'" json:"paymentMethod"`
	RazorpayOrderID   string    `gorm:"type:varchar(191);not null;default:'';index" json:"razorpayOrderId"`
	RazorpayPaymentID string    `gorm:"type:varchar(191);not null;default:'';index" json:"razorpayPaymentId"`
	FailureReason     *string   `gorm:"type:varchar(255);default:null" json:"failureReason"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsSuccessful reports whether this record granted access.
func (p *Payment) IsSuccessful() bool {
	return p.Status == PaymentStatusSuccess
}
