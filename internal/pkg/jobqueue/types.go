package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypePaymentConfirmationMail JobType = "payment_confirmation_mail"
	JobTypeWelcomeMail             JobType = "welcome_mail"
	JobTypePasswordResetMail       JobType = "password_reset_mail"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// PaymentMailJobPayload contains the payload for payment confirmation mails.
// It carries the ledger record id plus a denormalized copy of the display
// fields so the mail can still be sent if the record is unavailable.
type PaymentMailJobPayload struct {
	PaymentID         uint    `json:"payment_id"`
	UserName          string  `json:"user_name"`
	UserEmail         string  `json:"user_email"`
	PlanName          string  `json:"plan_name"`
	PlanDuration      string  `json:"plan_duration"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
}

// ToMap converts the payload to a map for storage
func (p PaymentMailJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"payment_id":          p.PaymentID,
		"user_name":           p.UserName,
		"user_email":          p.UserEmail,
		"plan_name":           p.PlanName,
		"plan_duration":       p.PlanDuration,
		"amount":              p.Amount,
		"currency":            p.Currency,
		"razorpay_order_id":   p.RazorpayOrderID,
		"razorpay_payment_id": p.RazorpayPaymentID,
	}
}

// PaymentMailJobPayloadFromMap creates a payload from a map
func PaymentMailJobPayloadFromMap(data map[string]interface{}) (*PaymentMailJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload PaymentMailJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// WelcomeMailJobPayload contains the payload for welcome mails
type WelcomeMailJobPayload struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// ToMap converts the payload to a map for storage
func (p WelcomeMailJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"user_name":  p.UserName,
		"user_email": p.UserEmail,
	}
}

// WelcomeMailJobPayloadFromMap creates a payload from a map
func WelcomeMailJobPayloadFromMap(data map[string]interface{}) (*WelcomeMailJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload WelcomeMailJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// PasswordResetMailJobPayload contains the payload for password reset mails
type PasswordResetMailJobPayload struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	ResetLink string `json:"reset_link"`
}

// ToMap converts the payload to a map for storage
func (p PasswordResetMailJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"user_name":  p.UserName,
		"user_email": p.UserEmail,
		"reset_link": p.ResetLink,
	}
}

// PasswordResetMailJobPayloadFromMap creates a payload from a map
func PasswordResetMailJobPayloadFromMap(data map[string]interface{}) (*PasswordResetMailJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload PasswordResetMailJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// IsRetryable checks if the job can be retried
func (j *Job) IsRetryable() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// MarkAsProcessing updates the job status to processing
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.UpdatedAt = now
	j.ProcessedAt = &now
}

// MarkAsCompleted updates the job status to completed
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.UpdatedAt = now
	j.CompletedAt = &now
	j.ErrorMsg = ""
}

// MarkAsFailed updates the job status to failed
func (j *Job) MarkAsFailed(errorMsg string) {
	j.Status = JobStatusFailed
	j.UpdatedAt = time.Now()
	j.ErrorMsg = errorMsg
	j.RetryCount++
}

// MarkAsRetrying updates the job status to retrying
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}
