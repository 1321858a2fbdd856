// internal/controller/reports_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/powercave/mail-service/internal/errors"
	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

var reportsLog = logger.ForService("reports")

type ReportsController struct {
	Mails *service.MailService
}

// SendDailyAdminReport sends the renewals overview mail.
func (c *ReportsController) SendDailyAdminReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		model.AdminReportMail
		SentBy string `json:"sentBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	sentBy := req.SentBy
	if sentBy == "" {
		sentBy = "daily_admin_report_backend"
	}

	if err := c.Mails.SendDailyAdminReport(r.Context(), req.AdminReportMail, sentBy); err != nil {
		if appErrors.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		reportsLog.Errorw("Error sending daily admin report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending daily admin report",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Daily admin report sent successfully"})
}

// SendDailySalesReport sends the sales summary mail.
func (c *ReportsController) SendDailySalesReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		model.SalesReportMail
		SentBy string `json:"sentBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	sentBy := req.SentBy
	if sentBy == "" {
		sentBy = "sales_registry_backend"
	}

	if err := c.Mails.SendDailySalesReport(r.Context(), req.SalesReportMail, sentBy); err != nil {
		if appErrors.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		reportsLog.Errorw("Error sending daily sales report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending daily sales report",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Daily sales report sent successfully"})
}
