package domain

// VerificationMailRepo hands a one-time verification code off for
// out-of-band delivery. Dispatch is fire-and-forget: failures are logged by
// the caller and never surfaced to the signup request.
type VerificationMailRepo interface {
	SendVerificationMail(email, verificationCode string) error
}
