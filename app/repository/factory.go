package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		if f.repos == nil {
			f.repos = &Repositories{
				Payment:      NewPaymentRepository(f.db),
				Channel:      NewChannelRepository(f.db),
				DownloadFile: NewDownloadFileRepository(f.db),
			}
		}
	})
	return f.repos
}

// GetPaymentRepository returns the payment ledger repository instance
func (f *Factory) GetPaymentRepository() PaymentRepository {
	return f.GetRepositories().Payment
}

// GetChannelRepository returns the channel catalog repository instance
func (f *Factory) GetChannelRepository() ChannelRepository {
	return f.GetRepositories().Channel
}

// GetDownloadFileRepository returns the download catalog repository instance
func (f *Factory) GetDownloadFileRepository() DownloadFileRepository {
	return f.GetRepositories().DownloadFile
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// ResetGlobalFactoryForTest clears the global factory so tests can install
// a fresh one.
func ResetGlobalFactoryForTest() {
	globalFactory = nil
	factoryOnce = sync.Once{}
}

// GetGlobalFactory returns the global repository factory
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("repository factory not initialized - call InitializeFactory first")
	}
	return globalFactory
}
