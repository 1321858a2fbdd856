// Package templates renders the HTML body for every mail kind the
// service sends. Each kind has a typed render function; optional
// fields are plain struct fields, not conditional template blocks.
package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/powercave/mail-service/internal/model"
)

var (
	reminderTmpl            = mustParse("reminder", reminderBody)
	discountTmpl            = mustParse("discount", discountBody)
	passwordResetTmpl       = mustParse("password_reset", passwordResetBody)
	platformCredentialsTmpl = mustParse("platform_credentials", platformCredentialsBody)
	reminderReportTmpl      = mustParse("reminder_report", reminderReportBody)
	adminReportTmpl         = mustParse("admin_report", adminReportBody)
	salesReportTmpl         = mustParse("sales_report", salesReportBody)
)

func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(sprig.HtmlFuncMap()).Parse(body))
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// RenderReminder renders a plan-renewal reminder body.
func RenderReminder(m model.ReminderMail) (string, error) {
	return render(reminderTmpl, struct {
		UserName, PlanName, ExpiryDate, GymName string
	}{m.UserName, m.PlanName, m.ExpiryDate, m.GymName})
}

// RenderDiscount renders a promotional discount body.
func RenderDiscount(m model.DiscountMail) (string, error) {
	return render(discountTmpl, struct {
		UserName, PromotionEndDate, GymName string
	}{m.UserName, m.PromotionEndDate, ""})
}

// RenderPasswordReset renders a password-reset body.
func RenderPasswordReset(m model.PasswordResetMail) (string, error) {
	return render(passwordResetTmpl, struct {
		ResetLink, GymName string
	}{m.ResetLink, m.GymName})
}

// RenderPlatformUserCredentials renders a credentials body.
func RenderPlatformUserCredentials(m model.PlatformUserCredentialsMail) (string, error) {
	return render(platformCredentialsTmpl, struct {
		UserEmail, TemporaryPassword, ResetPasswordLink, GymName string
	}{m.To, m.TemporaryPassword, m.ResetPasswordLink, m.GymName})
}

// ReportRow is one rendered line of the reminder dispatch report.
type ReportRow struct {
	PublicID    string
	Email       string
	StatusText  string
	StatusColor string
	Detail      string
	DetailColor string
}

// RenderReminderReport renders the aggregate dispatch report for a
// finished batch. Failure detail is truncated inside the template.
func RenderReminderReport(outcomes []model.ReminderOutcome, reportDate, gymName string) (string, error) {
	var successful, skipped, failed int
	rows := make([]ReportRow, 0, len(outcomes))

	for _, o := range outcomes {
		row := ReportRow{
			PublicID: o.PublicID,
			Email:    o.Email,
		}
		switch o.Status {
		case model.OutcomeSuccess:
			successful++
			row.StatusText = "✓ Sent"
			row.StatusColor = "#10b981"
			row.DetailColor = "#6b7280"
		case model.OutcomeSkipped:
			skipped++
			row.StatusText = "⏭ Skipped"
			row.StatusColor = "#f59e0b"
			row.Detail = o.Reason
			row.DetailColor = "#f59e0b"
		default:
			failed++
			row.StatusText = "✗ Failed"
			row.StatusColor = "#ef4444"
			row.Detail = o.Error
			if row.Detail == "" {
				row.Detail = o.Reason
			}
			row.DetailColor = "#ef4444"
		}
		rows = append(rows, row)
	}

	return render(reminderReportTmpl, struct {
		ReportDate string
		GymName    string
		Total      int
		Successful int
		Skipped    int
		Failed     int
		Rows       []ReportRow
	}{reportDate, gymName, len(outcomes), successful, skipped, failed, rows})
}

// RenderAdminReport renders the daily renewals report body.
func RenderAdminReport(m model.AdminReportMail) (string, error) {
	return render(adminReportTmpl, struct {
		ReportDate      string
		GymName         string
		ExpiringSoon    []model.MemberPlanRow
		RecentlyExpired []model.MemberPlanRow
	}{m.ReportDate, m.GymName, m.ExpiringSoon, m.RecentlyExpired})
}

// RenderSalesReport renders the daily sales report body.
func RenderSalesReport(m model.SalesReportMail) (string, error) {
	return render(salesReportTmpl, struct {
		ReportDate   string
		GymName      string
		TotalRevenue float64
		PlanSales    []model.SaleRow
		FoodSales    []model.SaleRow
	}{m.ReportDate, m.GymName, m.TotalRevenue, m.PlanSales, m.FoodSales})
}
