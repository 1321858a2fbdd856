package repository

import (
	"database/sql"
	"sort"
	"time"

	"github.com/powercave/mail-service/internal/model"
)

// EmailLogRepositoryInterface defines the log-store operations the
// services need.
type EmailLogRepositoryInterface interface {
	Create(entry *model.EmailLog) error
	UpdateStatus(id int, status, errorMessage string) error
	FindMostRecentSent(publicID, mailType string, sentAfter time.Time) (*model.EmailLog, error)
	LatestByTenant() ([]model.EmailLog, error)
}

// EmailLogRepository is the Postgres implementation.
type EmailLogRepository struct {
	DB *sql.DB
}

// Create inserts a new email log entry and captures the assigned ID.
func (r *EmailLogRepository) Create(entry *model.EmailLog) error {
	entry.CreatedAt = time.Now()
	if entry.Status == "" {
		entry.Status = model.EmailStatusPending
	}

	query := `
        INSERT INTO email_logs
        (recipient, subject, mail_type, public_id, client_name, status, sent_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		entry.Recipient,
		entry.Subject,
		entry.MailType,
		entry.PublicID,
		entry.ClientName,
		entry.Status,
		entry.SentBy,
		entry.CreatedAt,
	).Scan(&entry.ID)
}

// UpdateStatus finalizes a log entry. Transitioning to sent also stamps
// sent_at; a non-empty errorMessage is recorded as-is.
func (r *EmailLogRepository) UpdateStatus(id int, status, errorMessage string) error {
	var errMsg *string
	if errorMessage != "" {
		errMsg = &errorMessage
	}

	if status == model.EmailStatusSent {
		query := `UPDATE email_logs SET status=$1, error_message=$2, sent_at=$3 WHERE id=$4`
		_, err := r.DB.Exec(query, status, errMsg, time.Now(), id)
		return err
	}

	query := `UPDATE email_logs SET status=$1, error_message=$2 WHERE id=$3`
	_, err := r.DB.Exec(query, status, errMsg, id)
	return err
}

// FindMostRecentSent returns the newest sent entry for the given member
// and mail type since sentAfter, or nil when there is none.
func (r *EmailLogRepository) FindMostRecentSent(publicID, mailType string, sentAfter time.Time) (*model.EmailLog, error) {
	query := `
        SELECT id, recipient, subject, mail_type, public_id, client_name, status, error_message, sent_by, created_at, sent_at
        FROM email_logs
        WHERE public_id = $1 AND mail_type = $2 AND status = $3 AND sent_at >= $4
        ORDER BY sent_at DESC
        LIMIT 1
    `
	var entry model.EmailLog
	err := r.DB.QueryRow(query, publicID, mailType, model.EmailStatusSent, sentAfter).Scan(
		&entry.ID,
		&entry.Recipient,
		&entry.Subject,
		&entry.MailType,
		&entry.PublicID,
		&entry.ClientName,
		&entry.Status,
		&entry.ErrorMessage,
		&entry.SentBy,
		&entry.CreatedAt,
		&entry.SentAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no recent send
		}
		return nil, err
	}
	return &entry, nil
}

// LatestByTenant returns the most recent log entry per public ID,
// newest first. Entries without a public ID or without a sent_at are
// excluded.
func (r *EmailLogRepository) LatestByTenant() ([]model.EmailLog, error) {
	query := `
        SELECT DISTINCT ON (public_id)
               id, recipient, subject, mail_type, public_id, client_name, status, error_message, sent_by, created_at, sent_at
        FROM email_logs
        WHERE public_id IS NOT NULL AND sent_at IS NOT NULL
        ORDER BY public_id, sent_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.EmailLog{}
	for rows.Next() {
		var e model.EmailLog
		if err := rows.Scan(
			&e.ID,
			&e.Recipient,
			&e.Subject,
			&e.MailType,
			&e.PublicID,
			&e.ClientName,
			&e.Status,
			&e.ErrorMessage,
			&e.SentBy,
			&e.CreatedAt,
			&e.SentAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// DISTINCT ON orders by public_id first; callers want newest first.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SentAt.After(*entries[j].SentAt)
	})
	return entries, nil
}
