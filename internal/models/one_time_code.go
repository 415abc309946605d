package models

import "time"

// OneTimeCode is a short-lived numeric credential emailed to an admin to
// authorize a password reset. Rows are never deleted; expiry is checked
// lazily and consumption flips Used exactly once.
type OneTimeCode struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// Eligible reports whether the code can still be verified or consumed.
func (c *OneTimeCode) Eligible(now time.Time) bool {
	return !c.Used && !now.After(c.ExpiresAt)
}

// PasswordResetRequest is the single-endpoint request distinguished by
// Action. Email is checked for presence only; authorization is "an admin
// record exists with this email".
type PasswordResetRequest struct {
	Email       string `json:"email" validate:"required"`
	Action      string `json:"action" validate:"required"`
	OTP         string `json:"otp,omitempty" validate:"omitempty,len=6,numeric"`
	NewPassword string `json:"newPassword,omitempty" validate:"omitempty,min=8"`
}
