// internal/controller/discount_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

var discountLog = logger.ForService("discount")

type DiscountController struct {
	Mails *service.MailService
}

type discountItem struct {
	To               string `json:"to"`
	UserName         string `json:"userName"`
	PromotionEndDate string `json:"promotionEndDate"`
}

type sendDiscountRequest struct {
	discountItem
	Emails []discountItem `json:"emails"`
}

// SendDiscountEmail handles both the single and the bulk promotional
// form. Bulk sends get a unique subject suffix per mail so the
// provider does not collapse them into one thread.
func (c *DiscountController) SendDiscountEmail(w http.ResponseWriter, r *http.Request) {
	var req sendDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if len(req.Emails) > 0 {
		discountLog.Infow("Processing bulk discount emails", "total", len(req.Emails))

		timestamp := time.Now().UnixMilli()
		mails := make([]model.DiscountMail, 0, len(req.Emails))
		for i, item := range req.Emails {
			mails = append(mails, model.DiscountMail{
				To:               item.To,
				UserName:         item.UserName,
				PromotionEndDate: item.PromotionEndDate,
				Subject:          fmt.Sprintf("🎄 Special Holiday Offer - Up to 35%% Off | [%d-%d]", timestamp, i+1),
			})
		}

		result := c.Mails.SendBulkDiscounts(r.Context(), mails)
		discountLog.Infow("Bulk discount emails processing completed",
			"total", len(mails), "successful", result.Successful, "failed", len(result.Failed))

		resp := map[string]any{
			"message":    "Bulk discount emails processed",
			"total":      len(mails),
			"successful": result.Successful,
			"failed":     len(result.Failed),
		}
		if len(result.Failed) > 0 {
			resp["failures"] = result.Failed
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	if req.To != "" && req.UserName != "" && req.PromotionEndDate != "" {
		err := c.Mails.SendDiscount(r.Context(), model.DiscountMail{
			To:               req.To,
			UserName:         req.UserName,
			PromotionEndDate: req.PromotionEndDate,
			Subject:          "🎄 Special Holiday Offer - Up to 35% Off | Powercave",
		})
		if err != nil {
			discountLog.Errorw("Error sending discount email", "email", req.To, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"message": "Error sending discount email",
				"error":   err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Discount email sent successfully"})
		return
	}

	writeJSON(w, http.StatusBadRequest, map[string]string{
		"message": "Invalid request. Provide either {to, userName, promotionEndDate} or {emails: [{to, userName, promotionEndDate}, ...]}",
	})
}
