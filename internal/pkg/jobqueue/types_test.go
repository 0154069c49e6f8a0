package jobqueue

import "testing"

func TestJobLifecycle(t *testing.T) {
	job := &Job{
		ID:         "j1",
		Type:       JobTypePaymentConfirmationMail,
		Status:     JobStatusPending,
		MaxRetries: DefaultMaxRetries,
	}

	job.MarkAsProcessing()
	if job.Status != JobStatusProcessing || job.ProcessedAt == nil {
		t.Fatalf("after MarkAsProcessing: status=%s processedAt=%v", job.Status, job.ProcessedAt)
	}

	job.MarkAsFailed("smtp unreachable")
	if job.Status != JobStatusFailed || job.RetryCount != 1 {
		t.Fatalf("after MarkAsFailed: status=%s retries=%d", job.Status, job.RetryCount)
	}
	if !job.IsRetryable() {
		t.Error("job with retries left reported as not retryable")
	}

	job.RetryCount = job.MaxRetries
	if job.IsRetryable() {
		t.Error("exhausted job reported as retryable")
	}

	job.MarkAsCompleted()
	if job.Status != JobStatusCompleted || job.CompletedAt == nil || job.ErrorMsg != "" {
		t.Fatalf("after MarkAsCompleted: status=%s err=%q", job.Status, job.ErrorMsg)
	}
}

func TestPaymentMailPayloadRoundTrip(t *testing.T) {
	in := PaymentMailJobPayload{
		PaymentID:         42,
		UserName:          "Asha",
		UserEmail:         "asha@example.com",
		PlanName:          "Basic Piano Course",
		PlanDuration:      "Lifetime",
		Amount:            499,
		Currency:          "INR",
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
	}

	out, err := PaymentMailJobPayloadFromMap(in.ToMap())
	if err != nil {
		t.Fatalf("PaymentMailJobPayloadFromMap() error = %v", err)
	}
	if *out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", *out, in)
	}
}
