package services

import (
	"fmt"
	"time"
)

const otpEmailSubject = "Your Password Reset OTP Code"

// OTPEmailSubject is the subject line for password reset messages.
func OTPEmailSubject() string {
	return otpEmailSubject
}

// BuildOTPEmail renders the HTML body carrying the one-time code. The
// code travels only through this channel; it is never returned in an
// API response.
func BuildOTPEmail(code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="background-color: #8b7355; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1 style="margin: 0; font-size: 28px;">Password Reset OTP</h1>
        <p style="margin: 10px 0 0 0;">Gold Commercial Admin</p>
      </div>
      <div style="background-color: #f9f9f9; padding: 40px; border: 1px solid #e0e0e0; border-radius: 0 0 8px 8px;">
        <p>You requested to reset your password. Use the OTP code below to complete the process:</p>
        <div style="background-color: white; padding: 30px; text-align: center; margin: 30px 0; border: 2px dashed #8b7355; border-radius: 8px;">
          <div style="font-size: 36px; font-weight: bold; color: #8b7355; letter-spacing: 8px; font-family: monospace;">%s</div>
          <p style="margin: 15px 0 0 0; font-size: 12px; color: #999;">Valid for 5 minutes</p>
        </div>
        <p style="font-size: 14px;">Do not share this code with anyone. If you didn't request this, ignore this email.</p>
      </div>
      <div style="text-align: center; margin-top: 20px; color: #666; font-size: 12px;">
        <p>This is an automated email from the Gold Commercial admin panel.</p>
        <p>&copy; %d Gold Commercial. All rights reserved.</p>
      </div>
    </div>
  </body>
</html>`, code, time.Now().Year())
}
