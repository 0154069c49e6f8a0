package mail

import (
	"fmt"
	"html"

	"github.com/musickeys/backend/app/models"
)

// PaymentConfirmation renders the purchase confirmation mail for a recorded
// successful payment.
func PaymentConfirmation(payment *models.Payment) (subject string, body string) {
	subject = fmt.Sprintf("Payment Confirmed - %s", payment.PlanName)
	body = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Thank you for your purchase, %s!</h2>
	<p>Your payment was verified successfully. You now have %s access to <strong>%s</strong>.</p>
	<table style="border-collapse: collapse;">
		<tr><td style="padding: 4px 12px 4px 0;">Amount</td><td><strong>&#8377;%.2f %s</strong></td></tr>
		<tr><td style="padding: 4px 12px 4px 0;">Payment ID</td><td>%s</td></tr>
		<tr><td style="padding: 4px 12px 4px 0;">Order ID</td><td>%s</td></tr>
	</table>
	<p>Happy playing!<br>The Music Keys Team</p>
</div>`,
		html.EscapeString(payment.UserName),
		html.EscapeString(payment.PlanDuration),
		html.EscapeString(payment.PlanName),
		payment.Amount,
		html.EscapeString(payment.Currency),
		html.EscapeString(payment.RazorpayPaymentID),
		html.EscapeString(payment.RazorpayOrderID),
	)
	return subject, body
}

// Welcome renders the signup welcome mail.
func Welcome(userName string) (subject string, body string) {
	if userName == "" {
		userName = "there"
	}
	subject = "Welcome to Music Keys!"
	body = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Welcome, %s!</h2>
	<p>Your account is ready. Browse our piano courses and start learning today.</p>
	<p>The Music Keys Team</p>
</div>`, html.EscapeString(userName))
	return subject, body
}

// PasswordReset renders the password reset mail with the given reset link.
func PasswordReset(userName, resetLink string) (subject string, body string) {
	if userName == "" {
		userName = "there"
	}
	subject = "Reset your Music Keys password"
	body = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Hi %s,</h2>
	<p>We received a request to reset your password. Click the link below to choose a new one. The link expires in one hour.</p>
	<p><a href="%s">Reset password</a></p>
	<p>If you did not request this, you can safely ignore this email.</p>
	<p>The Music Keys Team</p>
</div>`, html.EscapeString(userName), resetLink)
	return subject, body
}
