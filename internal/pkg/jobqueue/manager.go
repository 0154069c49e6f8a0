package jobqueue

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2/log"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/internal/pkg/env"
	"github.com/musickeys/backend/internal/pkg/mail"
)

// Manager manages the global job queue
type Manager struct {
	queue   *Queue
	mu      sync.Mutex
	running bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global job queue manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		workerCount := 3
		if v, err := strconv.Atoi(env.GetEnv("JOBQUEUE_WORKERS", "")); err == nil && v > 0 {
			workerCount = v
		}

		globalManager = &Manager{
			queue: NewQueue(workerCount),
		}
	})
	return globalManager
}

// GetQueue returns the managed job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// Start starts the job queue workers
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true

	log.Info("[JobQueue Manager] Starting job queue")
	m.queue.Start()
	log.Info("[JobQueue Manager] Started successfully")
}

// Stop stops the job queue workers
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false

	log.Info("[JobQueue Manager] Stopping job queue...")
	m.queue.Stop()
	log.Info("[JobQueue Manager] Stopped successfully")
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// MailNotifier bridges recorded payments into confirmation mail jobs. When
// the queue is not running (no Redis available) it falls back to sending
// directly in a goroutine so the caller never blocks either way.
type MailNotifier struct {
	manager *Manager
}

// NewMailNotifier creates a notifier backed by the global manager.
func NewMailNotifier() *MailNotifier {
	return &MailNotifier{manager: GetManager()}
}

// PaymentRecorded enqueues a confirmation mail for a successful payment.
func (n *MailNotifier) PaymentRecorded(payment *models.Payment) {
	if payment == nil || !payment.IsSuccessful() {
		return
	}
	if payment.UserEmail == "" {
		log.Debugf("[JobQueue] Payment %d has no email, skipping confirmation mail", payment.ID)
		return
	}

	payload := PaymentMailJobPayload{
		PaymentID:         payment.ID,
		UserName:          payment.UserName,
		UserEmail:         payment.UserEmail,
		PlanName:          payment.PlanName,
		PlanDuration:      payment.PlanDuration,
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		RazorpayOrderID:   payment.RazorpayOrderID,
		RazorpayPaymentID: payment.RazorpayPaymentID,
	}

	if !n.manager.IsRunning() {
		go func() {
			subject, body := mail.PaymentConfirmation(payment)
			if err := mail.SendMail(payment.UserEmail, subject, body); err != nil {
				log.Errorf("[JobQueue] Direct confirmation mail for payment %d failed: %v", payment.ID, err)
			}
		}()
		return
	}

	if _, err := n.manager.GetQueue().EnqueueJob(JobTypePaymentConfirmationMail, payload.ToMap()); err != nil {
		log.Errorf("[JobQueue] Failed to enqueue confirmation mail for payment %d: %v", payment.ID, err)
	}
}

// EnqueueWelcomeMail queues a welcome mail, sending directly when the queue
// is not running.
func EnqueueWelcomeMail(userName, userEmail string) error {
	m := GetManager()
	payload := WelcomeMailJobPayload{UserName: userName, UserEmail: userEmail}

	if !m.IsRunning() {
		subject, body := mail.Welcome(userName)
		return mail.SendMail(userEmail, subject, body)
	}

	_, err := m.GetQueue().EnqueueJob(JobTypeWelcomeMail, payload.ToMap())
	return err
}

// EnqueuePasswordResetMail queues a password reset mail, sending directly
// when the queue is not running.
func EnqueuePasswordResetMail(userName, userEmail, resetLink string) error {
	m := GetManager()
	payload := PasswordResetMailJobPayload{UserName: userName, UserEmail: userEmail, ResetLink: resetLink}

	if !m.IsRunning() {
		subject, body := mail.PasswordReset(userName, resetLink)
		return mail.SendMail(userEmail, subject, body)
	}

	_, err := m.GetQueue().EnqueueJob(JobTypePasswordResetMail, payload.ToMap())
	return err
}
