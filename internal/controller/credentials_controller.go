// internal/controller/credentials_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

var credentialsLog = logger.ForService("credentials")

type CredentialsController struct {
	Mails *service.MailService
}

// SendPasswordReset sends a password-reset link mail.
func (c *CredentialsController) SendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To        string `json:"to"`
		ResetLink string `json:"resetLink"`
		Subject   string `json:"subject"`
		GymName   string `json:"gymName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if req.To == "" || req.ResetLink == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing required fields: to, resetLink"})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "Reset your password"
		if req.GymName != "" {
			subject = fmt.Sprintf("Reset your password | %s", req.GymName)
		}
	}

	err := c.Mails.SendPasswordReset(r.Context(), model.PasswordResetMail{
		To:        req.To,
		Subject:   subject,
		ResetLink: req.ResetLink,
		GymName:   req.GymName,
	})
	if err != nil {
		credentialsLog.Errorw("Error sending password reset email", "email", req.To, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending password reset email",
			"error":   err.Error(),
		})
		return
	}

	credentialsLog.Infow("Password reset email sent", "email", req.To)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent successfully"})
}

// SendPlatformUserCredentials sends a temporary-credentials mail to a
// newly provisioned platform user.
func (c *CredentialsController) SendPlatformUserCredentials(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To                string `json:"to"`
		TemporaryPassword string `json:"temporaryPassword"`
		ResetPasswordLink string `json:"resetPasswordLink"`
		GymName           string `json:"gymName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if req.To == "" || req.TemporaryPassword == "" || req.ResetPasswordLink == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Missing required fields: to, temporaryPassword, resetPasswordLink",
		})
		return
	}

	subject := "Your account credentials"
	if req.GymName != "" {
		subject = fmt.Sprintf("Your account credentials | %s", req.GymName)
	}

	err := c.Mails.SendPlatformUserCredentials(r.Context(), model.PlatformUserCredentialsMail{
		To:                req.To,
		Subject:           subject,
		TemporaryPassword: req.TemporaryPassword,
		ResetPasswordLink: req.ResetPasswordLink,
		GymName:           req.GymName,
	})
	if err != nil {
		credentialsLog.Errorw("Error sending platform user credentials email", "email", req.To, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending platform user credentials email",
			"error":   err.Error(),
		})
		return
	}

	credentialsLog.Infow("Platform user credentials email sent", "email", req.To)
	w.WriteHeader(http.StatusOK)
}
