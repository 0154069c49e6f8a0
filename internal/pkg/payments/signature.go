package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifySignature checks that the gateway authorized the given order/payment
// pair. The signature is the hex-encoded HMAC-SHA256 of "orderID|paymentID"
// under the key secret shared with Razorpay.
func VerifySignature(orderID, paymentID, signature string, secret []byte) bool {
	sig := strings.TrimSpace(signature)
	if sig == "" || len(secret) == 0 {
		return false
	}

	decodedSig, err := hex.DecodeString(strings.ToLower(sig))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hmac.Equal(mac.Sum(nil), decodedSig)
}
