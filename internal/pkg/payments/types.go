package payments

import "errors"

// ErrNotConfigured is returned when the Razorpay key secret is missing.
// Verification refuses to run rather than failing open or closed with an
// ambiguous signal.
var ErrNotConfigured = errors.New("razorpay key secret is not configured")

// ReasonInvalidSignature is the failure reason recorded when the HMAC check
// does not match.
const ReasonInvalidSignature = "Invalid signature"

// Claim is the caller-submitted assertion that a payment completed. Only the
// three razorpay_* fields are authenticated; everything else is advisory
// display data copied into the ledger record.
type Claim struct {
	RazorpayOrderID   string  `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string  `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string  `json:"razorpay_signature" validate:"required"`
	PlanID            string  `json:"planId" validate:"required"`
	UserID            string  `json:"userId" validate:"required"`
	UserName          string  `json:"userName"`
	UserEmail         string  `json:"userEmail" validate:"omitempty,email"`
	PlanName          string  `json:"planName"`
	Amount            float64 `json:"amount" validate:"gte=0"`
	PlanDuration      string  `json:"planDuration"`
}

// VerifyResult reports the outcome of a verification attempt. RecordID is
// always set: failed attempts are recorded in the ledger too.
type VerifyResult struct {
	Success           bool
	RecordID          uint
	RazorpayOrderID   string
	RazorpayPaymentID string
	FailureReason     string
	// InternalFault distinguishes unexpected faults from signature
	// mismatches so analytics can tell fraud attempts from bugs.
	InternalFault bool
}
