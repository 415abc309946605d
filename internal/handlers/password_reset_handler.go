package handlers

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"goldsite/internal/models"
	"goldsite/internal/repository"
	"goldsite/internal/services"
)

const otpTTL = 5 * time.Minute

// PasswordResetHandler implements the OTP password reset flow for admin
// accounts: send issues and emails a code, verify checks one without
// consuming it, reset rotates the password and consumes the code.
type PasswordResetHandler struct {
	admins repository.AdminUserRepository
	codes  repository.OneTimeCodeRepository
	mailer services.EmailSender
	v      *validator.Validate
}

func NewPasswordResetHandler(db *sql.DB, mailer services.EmailSender) *PasswordResetHandler {
	return &PasswordResetHandler{
		admins: repository.NewAdminUserRepository(db),
		codes:  repository.NewOneTimeCodeRepository(db),
		mailer: mailer,
		v:      validator.New(),
	}
}

func writeResetError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func writeResetSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": message})
}

// Handle dispatches on the request's action field.
func (h *PasswordResetHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResetError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Action == "" {
		writeResetError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	switch req.Action {
	case "send":
		h.send(w, r, &req)
	case "verify":
		h.verify(w, r, &req)
	case "reset":
		h.reset(w, r, &req)
	default:
		writeResetError(w, http.StatusBadRequest, "Invalid action")
	}
}

func (h *PasswordResetHandler) send(w http.ResponseWriter, r *http.Request, req *models.PasswordResetRequest) {
	// Existence disclosure is deliberate for this admin-only flow.
	if _, err := h.admins.GetByEmail(r.Context(), req.Email); err != nil {
		if err == sql.ErrNoRows {
			writeResetError(w, http.StatusNotFound, "Email not found")
			return
		}
		log.Printf("Admin lookup error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	otpCode, err := generateOTP()
	if err != nil {
		log.Printf("OTP generation error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	ipAddress, userAgent := requestMeta(r)
	now := time.Now().UTC()
	code := &models.OneTimeCode{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Code:      otpCode,
		ExpiresAt: now.Add(otpTTL),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: now,
	}

	if err := h.codes.Create(r.Context(), code); err != nil {
		log.Printf("OTP storage error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	// Delivery failure leaves the stored code in place; it is never
	// rolled back.
	if err := h.mailer.Send(req.Email, services.OTPEmailSubject(), services.BuildOTPEmail(otpCode)); err != nil {
		log.Printf("OTP email error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to send OTP email")
		return
	}

	writeResetSuccess(w, "OTP sent to your email")
}

func (h *PasswordResetHandler) verify(w http.ResponseWriter, r *http.Request, req *models.PasswordResetRequest) {
	if req.OTP == "" {
		writeResetError(w, http.StatusBadRequest, "OTP code required")
		return
	}
	// A malformed code gets the same generic answer as a wrong one.
	if err := h.v.Var(req.OTP, "len=6,numeric"); err != nil {
		writeResetError(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	// Read-only: advancing the client UI must not consume the code.
	if _, err := h.codes.FindEligible(r.Context(), req.Email, req.OTP); err != nil {
		if err == repository.ErrCodeNotEligible {
			writeResetError(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		log.Printf("OTP lookup error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to verify OTP")
		return
	}

	writeResetSuccess(w, "OTP verified successfully")
}

func (h *PasswordResetHandler) reset(w http.ResponseWriter, r *http.Request, req *models.PasswordResetRequest) {
	if req.OTP == "" || req.NewPassword == "" {
		writeResetError(w, http.StatusBadRequest, "OTP and new password required")
		return
	}
	// Server-side re-check; the client's minimum-length validation is
	// not trusted.
	if len(req.NewPassword) < 8 {
		writeResetError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if err := h.v.Var(req.OTP, "len=6,numeric"); err != nil {
		writeResetError(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	code, err := h.codes.FindEligible(r.Context(), req.Email, req.OTP)
	if err != nil {
		if err == repository.ErrCodeNotEligible {
			writeResetError(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		log.Printf("OTP lookup error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	admin, err := h.admins.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			writeResetError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Admin lookup error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeResetError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	// Ordering matters: the code is consumed only after the password
	// update succeeds, so a failed update leaves it usable for a retry.
	if err := h.admins.UpdatePasswordHash(r.Context(), admin.ID, string(pwHash)); err != nil {
		log.Printf("Password update error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := h.codes.Consume(r.Context(), code.ID); err != nil {
		if err == repository.ErrCodeNotEligible {
			// A concurrent reset consumed it first.
			writeResetError(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		log.Printf("OTP consume error: %v", err)
		writeResetError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	writeResetSuccess(w, "Password reset successfully")
}

// generateOTP draws a code uniformly over [100000, 999999]. Leading-zero
// codes are excluded by construction.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
