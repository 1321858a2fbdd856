// internal/controller/reminder_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	appErrors "github.com/powercave/mail-service/internal/errors"
	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

var reminderLog = logger.ForService("reminders")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type ReminderController struct {
	Reminders *service.ReminderService
}

type reminderItem struct {
	To         string `json:"to"`
	UserName   string `json:"userName"`
	PlanName   string `json:"planName"`
	ExpiryDate string `json:"expiryDate"`
	PublicID   string `json:"publicId,omitempty"`
}

type sendRemindersRequest struct {
	Reminders        []reminderItem `json:"reminders"`
	ReportRecipients []string       `json:"report_recipients"`
	SentBy           string         `json:"sentBy"`
	GymName          string         `json:"gymName"`
}

// SendReminders processes a reminder batch synchronously and then
// emits the administrative report. The caller always gets itemized
// counts for a well-formed batch, even when every item failed.
func (c *ReminderController) SendReminders(w http.ResponseWriter, r *http.Request) {
	var req sendRemindersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reminders == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Request body must be { reminders: [...], report_recipients: string[] }",
		})
		return
	}
	if len(req.Reminders) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "reminders must be a non-empty array",
		})
		return
	}
	if len(req.ReportRecipients) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "report_recipients is required and must be a non-empty array of email addresses",
		})
		return
	}

	for i, item := range req.Reminders {
		if item.To == "" || item.UserName == "" || item.PlanName == "" || item.ExpiryDate == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": fmt.Sprintf(
					"Missing required fields in reminder at index %d. Required: to, userName, planName, expiryDate", i),
			})
			return
		}
	}

	sentBy := req.SentBy
	if sentBy == "" {
		sentBy = "backend_service"
	}

	subject := fmt.Sprintf("Reminder: your plan expires soon | %s", req.GymName)
	mails := make([]model.ReminderMail, 0, len(req.Reminders))
	for _, item := range req.Reminders {
		mails = append(mails, model.ReminderMail{
			To:         item.To,
			UserName:   item.UserName,
			PlanName:   item.PlanName,
			ExpiryDate: item.ExpiryDate,
			Subject:    subject,
			PublicID:   item.PublicID,
			GymName:    req.GymName,
		})
	}

	result, err := c.Reminders.SendBulk(r.Context(), mails, sentBy)
	if err != nil {
		if appErrors.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		reminderLog.Errorw("Error sending reminders", "error", err, "totalReminders", len(req.Reminders))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending reminders",
			"error":   err.Error(),
		})
		return
	}

	reminderLog.Infow("Processing completed, sending administrative report",
		"total", len(req.Reminders), "successful", result.Successful, "failed", len(result.Failed))
	c.Reminders.SendReport(r.Context(), result.Outcomes, req.ReportRecipients, req.GymName)

	resp := map[string]any{
		"message":    "Reminders processed successfully",
		"total":      len(req.Reminders),
		"successful": result.Successful,
		"failed":     len(result.Failed),
	}
	if len(result.Failed) > 0 {
		resp["failures"] = result.Failed
	}
	writeJSON(w, http.StatusOK, resp)
}
