package model

import "time"

// Mail types recorded in the email log. Only reminder mails are
// deduplicated today, so only that category is persisted.
const (
	MailTypePlanRenewalReminder = "plan_renewal_reminder"
)

// Email log statuses.
const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)

// EmailLog is one persisted send attempt. A row is created in pending
// state before the provider call and finalized to sent or failed
// exactly once afterwards.
type EmailLog struct {
	ID           int        `db:"id" json:"id"`
	Recipient    string     `db:"recipient" json:"recipient"`
	Subject      string     `db:"subject" json:"subject"`
	MailType     string     `db:"mail_type" json:"mail_type"`
	PublicID     *string    `db:"public_id" json:"public_id,omitempty"`
	ClientName   string     `db:"client_name" json:"client_name"`
	Status       string     `db:"status" json:"status"`
	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`
	SentBy       string     `db:"sent_by" json:"sent_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	SentAt       *time.Time `db:"sent_at" json:"sent_at,omitempty"`
}
