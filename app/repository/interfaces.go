package repository

import (
	"github.com/musickeys/backend/app/models"
)

// PaymentRepository defines the ledger operations. The ledger is append-only:
// there is intentionally no Update or Delete for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	List() ([]models.Payment, error)
	ListSuccessfulByUser(userID string) ([]models.Payment, error)
	GetSuccessfulByUserAndPaymentID(userID, razorpayPaymentID string) (*models.Payment, error)
	Count() (int64, error)
}

// ChannelRepository defines the interface for the YouTube channel catalog.
type ChannelRepository interface {
	Create(channel *models.Channel) error
	GetByID(id string) (*models.Channel, error)
	List() ([]models.Channel, error)
	Update(channel *models.Channel) error
	Delete(id string) error
}

// DownloadFileRepository defines the interface for the gated-download catalog.
type DownloadFileRepository interface {
	GetByFileKey(fileKey string) (*models.DownloadFile, error)
	List() ([]models.DownloadFile, error)
	Upsert(file *models.DownloadFile) error
}

// Repositories holds all repository instances
type Repositories struct {
	Payment      PaymentRepository
	Channel      ChannelRepository
	DownloadFile DownloadFileRepository
}
