package controllers

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"

	"github.com/musickeys/backend/app/repository"
	"github.com/musickeys/backend/internal/pkg/downloads"
	"github.com/musickeys/backend/internal/pkg/entitlements"
	"github.com/musickeys/backend/internal/pkg/jobqueue"
	"github.com/musickeys/backend/internal/pkg/payments"
	"github.com/musickeys/backend/internal/pkg/razorpay"
)

var validate = validator.New()

var (
	servicesOnce       sync.Once
	razorpayClient     *razorpay.Client
	paymentService     *payments.Service
	paymentAnalytics   *payments.Analytics
	entitlementService *entitlements.Service
	downloadResolver   *downloads.Resolver
)

// initServices wires the shared service singletons. Called lazily so tests
// can install their own repositories through ResetServicesForTest first.
func initServices() {
	servicesOnce.Do(func() {
		repo := repository.GetGlobalFactory().GetPaymentRepository()
		razorpayClient = razorpay.NewClientFromEnv()
		paymentService = payments.NewService(repo, razorpayClient.Secret(), jobqueue.NewMailNotifier())
		paymentAnalytics = payments.NewAnalytics(repo)
		entitlementService = entitlements.NewService(repo)

		cfg, err := downloads.LoadConfig()
		if err != nil {
			log.Warnf("[Controllers] Download config invalid, using fallback URLs: %v", err)
			downloadResolver = downloads.NewResolver(nil)
		} else {
			downloadResolver = downloads.NewResolver(cfg)
		}
	})
}

// paymentRepo returns the active payment repository.
func paymentRepo() repository.PaymentRepository {
	return repository.GetGlobalFactory().GetPaymentRepository()
}

// channelRepo returns the active channel repository.
func channelRepo() repository.ChannelRepository {
	return repository.GetGlobalFactory().GetChannelRepository()
}

// downloadFileRepo returns the active download file repository.
func downloadFileRepo() repository.DownloadFileRepository {
	return repository.GetGlobalFactory().GetDownloadFileRepository()
}

// ResetServicesForTest clears the service singletons so tests can rebuild
// them against a fresh repository factory.
func ResetServicesForTest() {
	servicesOnce = sync.Once{}
	razorpayClient = nil
	paymentService = nil
	paymentAnalytics = nil
	entitlementService = nil
	downloadResolver = nil
}
