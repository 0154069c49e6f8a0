package mail

import (
	"strings"
	"testing"

	"github.com/musickeys/backend/app/models"
)

func TestPaymentConfirmation(t *testing.T) {
	subject, body := PaymentConfirmation(&models.Payment{
		UserName:          "Asha",
		PlanName:          "Styles & Tones Package",
		PlanDuration:      "Lifetime",
		Amount:            999,
		Currency:          "INR",
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
	})

	if !strings.Contains(subject, "Styles &amp; Tones Package") && !strings.Contains(subject, "Styles & Tones Package") {
		t.Errorf("subject = %q, missing plan name", subject)
	}
	for _, want := range []string{"Asha", "pay_1", "order_1", "Lifetime", "999.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestPaymentConfirmationEscapesHTML(t *testing.T) {
	_, body := PaymentConfirmation(&models.Payment{
		UserName: "<script>alert(1)</script>",
		Currency: "INR",
	})
	if strings.Contains(body, "<script>") {
		t.Error("user name not escaped")
	}
}

func TestWelcomeDefaultsName(t *testing.T) {
	_, body := Welcome("")
	if !strings.Contains(body, "Welcome, there!") {
		t.Errorf("empty name not defaulted: %q", body)
	}
}

func TestPasswordResetIncludesLink(t *testing.T) {
	_, body := PasswordReset("Ravi", "https://example.com/reset?token=abc")
	if !strings.Contains(body, "https://example.com/reset?token=abc") {
		t.Error("reset link missing from body")
	}
}
