package payments

import (
	"strings"
	"testing"
)

// Known vector: HMAC-SHA256("order_live_001|pay_live_001", "s3cr3t")
const knownSignature = "92cfb292ecf78f47f136db50eaedf042545577e93c978e61c3e1bd8423c4afe8"

func TestVerifySignature(t *testing.T) {
	secret := []byte("s3cr3t")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    []byte
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: knownSignature,
			secret:    secret,
			want:      true,
		},
		{
			name:      "uppercase hex accepted",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: strings.ToUpper(knownSignature),
			secret:    secret,
			want:      true,
		},
		{
			name:      "surrounding whitespace trimmed",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: "  " + knownSignature + "\n",
			secret:    secret,
			want:      true,
		},
		{
			name:      "wrong secret",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: knownSignature,
			secret:    []byte("other"),
			want:      false,
		},
		{
			name:      "swapped order and payment ids",
			orderID:   "pay_live_001",
			paymentID: "order_live_001",
			signature: knownSignature,
			secret:    secret,
			want:      false,
		},
		{
			name:      "tampered signature",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: "deadbeef" + knownSignature[8:],
			secret:    secret,
			want:      false,
		},
		{
			name:      "non-hex signature",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: "not-a-hex-string",
			secret:    secret,
			want:      false,
		},
		{
			name:      "empty signature",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: "",
			secret:    secret,
			want:      false,
		},
		{
			name:      "empty secret",
			orderID:   "order_live_001",
			paymentID: "pay_live_001",
			signature: knownSignature,
			secret:    nil,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifySignature(tt.orderID, tt.paymentID, tt.signature, tt.secret)
			if got != tt.want {
				t.Fatalf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}
