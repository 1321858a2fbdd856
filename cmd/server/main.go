// cmd/server/main.go
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/powercave/mail-service/internal/config"
	"github.com/powercave/mail-service/internal/controller"
	"github.com/powercave/mail-service/internal/db"
	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/mailer"
	"github.com/powercave/mail-service/internal/middleware"
	"github.com/powercave/mail-service/internal/repository"
	"github.com/powercave/mail-service/internal/service"
)

func main() {
	log := logger.ForService("server")
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	conn, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatalw("Failed to apply migrations", "error", err)
	}
	log.Infow("Connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	location, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		log.Warnw("Invalid report timezone, falling back to local time",
			"timezone", cfg.ReportTimezone, "error", err)
		location = time.Local
	}

	logRepo := &repository.EmailLogRepository{DB: conn}
	resendMailer := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.SenderEmail)
	throttle := service.NewIntervalThrottle(cfg.SendThrottle)

	reminderService := &service.ReminderService{
		LogRepo:  logRepo,
		Mailer:   resendMailer,
		Throttle: throttle,
		Cooldown: cfg.ReminderCooldown(),
		Location: location,
	}
	mailService := &service.MailService{
		Mailer:   resendMailer,
		Throttle: throttle,
	}
	tenantService := &service.TenantService{
		LogRepo: logRepo,
	}

	reminderController := &controller.ReminderController{Reminders: reminderService}
	discountController := &controller.DiscountController{Mails: mailService}
	credentialsController := &controller.CredentialsController{Mails: mailService}
	reportsController := &controller.ReportsController{Mails: mailService}
	tenantController := &controller.TenantController{Tenants: tenantService}

	requireAPIKey := middleware.RequireAPIKey(cfg.MailServiceAPIKey)
	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Route("/mail", func(r chi.Router) {
		r.With(requireAPIKey).Post("/send_reminder", reminderController.SendReminders)
		r.With(requireAPIKey).Post("/send_password_reset", credentialsController.SendPasswordReset)
		r.With(requireAPIKey).Post("/send_platform_user_credentials", credentialsController.SendPlatformUserCredentials)
		r.With(requireAPIKey).Post("/send_daily_admin_report", reportsController.SendDailyAdminReport)
		r.With(requireAPIKey).Post("/send_daily_sales_report", reportsController.SendDailySalesReport)
		r.Post("/send_discount_email", discountController.SendDiscountEmail)
		r.With(requireAuth, middleware.RequireMailServiceAccess).
			Get("/last-emails-by-tenant", tenantController.LastEmailsByTenant)
	})

	addr := ":" + cfg.Port
	log.Infow("Server running", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalw("Server stopped", "error", err)
	}
}
