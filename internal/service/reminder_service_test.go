package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/powercave/mail-service/internal/errors"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

// --- Fakes ---

type fakeLogRepo struct {
	mu        sync.Mutex
	entries   []*model.EmailLog
	nextID    int
	createErr error
}

func (f *fakeLogRepo) Create(entry *model.EmailLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	entry.ID = f.nextID
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLogRepo) UpdateStatus(id int, status, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == id {
			e.Status = status
			if errorMessage != "" {
				msg := errorMessage
				e.ErrorMessage = &msg
			}
			if status == model.EmailStatusSent {
				now := time.Now()
				e.SentAt = &now
			}
			return nil
		}
	}
	return errors.New("entry not found")
}

func (f *fakeLogRepo) FindMostRecentSent(publicID, mailType string, sentAfter time.Time) (*model.EmailLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var newest *model.EmailLog
	for _, e := range f.entries {
		if e.PublicID == nil || *e.PublicID != publicID {
			continue
		}
		if e.MailType != mailType || e.Status != model.EmailStatusSent {
			continue
		}
		if e.SentAt == nil || e.SentAt.Before(sentAfter) {
			continue
		}
		if newest == nil || e.SentAt.After(*newest.SentAt) {
			newest = e
		}
	}
	return newest, nil
}

func (f *fakeLogRepo) LatestByTenant() ([]model.EmailLog, error) {
	return nil, nil
}

func (f *fakeLogRepo) seedSent(publicID string, sentAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.entries = append(f.entries, &model.EmailLog{
		ID:       f.nextID,
		PublicID: &publicID,
		MailType: model.MailTypePlanRenewalReminder,
		Status:   model.EmailStatusSent,
		SentAt:   &sentAt,
	})
}

func (f *fakeLogRepo) byStatus(status string) []*model.EmailLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.EmailLog
	for _, e := range f.entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []model.Mail
	sentAt []time.Time
	failTo map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, mail model.Mail) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failTo[mail.To]; ok {
		return "", err
	}
	f.sent = append(f.sent, mail)
	f.sentAt = append(f.sentAt, time.Now())
	return "msg-1", nil
}

type countingThrottle struct {
	waits int
}

func (t *countingThrottle) Wait(context.Context) { t.waits++ }

func newService(repo *fakeLogRepo, m *fakeMailer, throttle service.Throttle) *service.ReminderService {
	return &service.ReminderService{
		LogRepo:  repo,
		Mailer:   m,
		Throttle: throttle,
	}
}

func reminder(to, publicID string) model.ReminderMail {
	return model.ReminderMail{
		To:         to,
		UserName:   "Test Member",
		PlanName:   "Gold",
		ExpiryDate: "2026-09-15",
		Subject:    "Reminder: your plan expires soon | Powercave",
		PublicID:   publicID,
	}
}

// --- SendReminder ---

func TestSendReminderRequiresSentBy(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	_, err := svc.SendReminder(context.Background(), reminder("a@gym.cl", "pub-1"), "")

	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Empty(t, repo.entries, "no store writes before validation")
	assert.Empty(t, m.sent, "no transport calls before validation")
}

func TestSendReminderLogLifecycleOnSuccess(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	disp, err := svc.SendReminder(context.Background(), reminder("a@gym.cl", "pub-1"), "admin")

	require.NoError(t, err)
	assert.False(t, disp.Skipped)
	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, model.EmailStatusSent, entry.Status)
	assert.NotNil(t, entry.SentAt)
	assert.Nil(t, entry.ErrorMessage)
	assert.Equal(t, "admin", entry.SentBy)
	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0].HTML, "Gold")
}

func TestSendReminderLogLifecycleOnTransportFailure(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{failTo: map[string]error{"a@gym.cl": errors.New("provider rejected")}}
	svc := newService(repo, m, service.NoThrottle{})

	_, err := svc.SendReminder(context.Background(), reminder("a@gym.cl", "pub-1"), "admin")

	require.Error(t, err)
	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, model.EmailStatusFailed, entry.Status)
	require.NotNil(t, entry.ErrorMessage)
	assert.Contains(t, *entry.ErrorMessage, "provider rejected")
}

func TestSendReminderWithoutPublicIDSkipsPersistence(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	disp, err := svc.SendReminder(context.Background(), reminder("test@gym.cl", ""), "admin")

	require.NoError(t, err)
	assert.False(t, disp.Skipped)
	assert.Empty(t, repo.entries, "test sends are never logged")
	assert.Len(t, m.sent, 1)
}

func TestSendReminderSkippedWithinCooldown(t *testing.T) {
	repo := &fakeLogRepo{}
	lastSent := time.Now().Add(-2 * time.Hour)
	repo.seedSent("pub-1", lastSent)
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	disp, err := svc.SendReminder(context.Background(), reminder("a@gym.cl", "pub-1"), "admin")

	require.NoError(t, err)
	assert.True(t, disp.Skipped)
	require.NotNil(t, disp.LastSentAt)
	assert.WithinDuration(t, lastSent, *disp.LastSentAt, time.Second)
	assert.Empty(t, m.sent, "no transport call for a skipped reminder")
	assert.Len(t, repo.entries, 1, "no new log entry for a skipped reminder")
}

func TestSendReminderProceedsAfterCooldownExpires(t *testing.T) {
	repo := &fakeLogRepo{}
	repo.seedSent("pub-1", time.Now().Add(-49*time.Hour))
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	disp, err := svc.SendReminder(context.Background(), reminder("a@gym.cl", "pub-1"), "admin")

	require.NoError(t, err)
	assert.False(t, disp.Skipped)
	assert.Len(t, m.sent, 1)
}

// --- SendBulk ---

func TestSendBulkOutcomeInvariant(t *testing.T) {
	repo := &fakeLogRepo{}
	repo.seedSent("pub-dup", time.Now().Add(-1*time.Hour))
	m := &fakeMailer{failTo: map[string]error{"bad@gym.cl": errors.New("smtp 550")}}
	svc := newService(repo, m, service.NoThrottle{})

	batch := []model.ReminderMail{
		reminder("a@gym.cl", "pub-1"),
		reminder("bad@gym.cl", "pub-2"),
		reminder("dup@gym.cl", "pub-dup"),
		reminder("b@gym.cl", "pub-3"),
	}
	result, err := svc.SendBulk(context.Background(), batch, "admin")

	require.NoError(t, err)
	require.Len(t, result.Outcomes, len(batch))
	assert.Equal(t, len(batch), result.Successful+len(result.Failed)+result.Skipped())
}

func TestSendBulkTwoFreshOneDuplicate(t *testing.T) {
	repo := &fakeLogRepo{}
	repo.seedSent("pub-dup", time.Now().Add(-3*time.Hour))
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	batch := []model.ReminderMail{
		reminder("a@gym.cl", "pub-1"),
		reminder("b@gym.cl", "pub-2"),
		reminder("dup@gym.cl", "pub-dup"),
	}
	result, err := svc.SendBulk(context.Background(), batch, "admin")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)
	assert.Empty(t, result.Failed)

	statuses := make([]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		statuses = append(statuses, o.Status)
	}
	assert.Equal(t, []string{model.OutcomeSuccess, model.OutcomeSuccess, model.OutcomeSkipped}, statuses)

	skipped := result.Outcomes[2]
	assert.Equal(t, "pub-dup", skipped.PublicID)
	assert.Empty(t, skipped.Error)
	assert.Contains(t, skipped.Reason, "last sent:")
}

func TestSendBulkPartialFailureIsolation(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{failTo: map[string]error{"b@gym.cl": errors.New("timeout")}}
	svc := newService(repo, m, service.NoThrottle{})

	batch := []model.ReminderMail{
		reminder("a@gym.cl", "pub-1"),
		reminder("b@gym.cl", "pub-2"),
		reminder("c@gym.cl", "pub-3"),
	}
	result, err := svc.SendBulk(context.Background(), batch, "admin")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "b@gym.cl", result.Failed[0].Email)
	assert.Contains(t, result.Failed[0].Error, "timeout")

	// The item after the failure was still attempted and succeeded.
	assert.Equal(t, model.OutcomeSuccess, result.Outcomes[2].Status)
	assert.Len(t, repo.byStatus(model.EmailStatusSent), 2)
	assert.Len(t, repo.byStatus(model.EmailStatusFailed), 1)
}

func TestSendBulkStoreFailureClassifiedAsFailed(t *testing.T) {
	repo := &fakeLogRepo{createErr: errors.New("connection reset")}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	result, err := svc.SendBulk(context.Background(), []model.ReminderMail{reminder("a@gym.cl", "pub-1")}, "admin")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Successful)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0].Error, "connection reset")
	assert.Empty(t, m.sent, "no transport call when the pending insert fails")
}

func TestSendBulkMissingSentBy(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	_, err := svc.SendBulk(context.Background(), []model.ReminderMail{reminder("a@gym.cl", "pub-1")}, "")

	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Empty(t, repo.entries)
	assert.Empty(t, m.sent)
}

func TestSendBulkThrottlesBetweenItems(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	throttle := &countingThrottle{}
	svc := newService(repo, m, throttle)

	batch := []model.ReminderMail{
		reminder("a@gym.cl", ""),
		reminder("b@gym.cl", ""),
		reminder("c@gym.cl", ""),
	}
	_, err := svc.SendBulk(context.Background(), batch, "admin")

	require.NoError(t, err)
	assert.Equal(t, len(batch)-1, throttle.waits, "one pause between each pair of items, none after the last")
}

func TestSendBulkRealThrottleElapsed(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	interval := 10 * time.Millisecond
	svc := newService(repo, m, service.NewIntervalThrottle(interval))

	batch := []model.ReminderMail{
		reminder("a@gym.cl", ""),
		reminder("b@gym.cl", ""),
		reminder("c@gym.cl", ""),
	}
	_, err := svc.SendBulk(context.Background(), batch, "admin")

	require.NoError(t, err)
	require.Len(t, m.sentAt, 3)
	elapsed := m.sentAt[2].Sub(m.sentAt[0])
	assert.GreaterOrEqual(t, elapsed, time.Duration(len(batch)-1)*interval)
}

// --- SendReport ---

func TestSendReportToEveryRecipient(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	outcomes := []model.ReminderOutcome{
		{PublicID: "pub-1", Email: "a@gym.cl", Status: model.OutcomeSuccess},
		{PublicID: "pub-2", Email: "b@gym.cl", Status: model.OutcomeFailed, Error: "smtp 550"},
	}
	svc.SendReport(context.Background(), outcomes, []string{"admin1@gym.cl", "admin2@gym.cl"}, "Powercave")

	require.Len(t, m.sent, 2)
	assert.Equal(t, "admin1@gym.cl", m.sent[0].To)
	assert.Equal(t, "admin2@gym.cl", m.sent[1].To)
	assert.Contains(t, m.sent[0].Subject, "[Gym Report]")
	assert.Contains(t, m.sent[0].HTML, "a@gym.cl")
	assert.Contains(t, m.sent[0].HTML, "smtp 550")
}

func TestSendReportEmptyRecipientList(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{}
	svc := newService(repo, m, service.NoThrottle{})

	svc.SendReport(context.Background(), []model.ReminderOutcome{
		{Email: "a@gym.cl", Status: model.OutcomeSuccess},
	}, nil, "")

	assert.Empty(t, m.sent)
}

func TestSendReportFailuresDoNotAbortRemainingRecipients(t *testing.T) {
	repo := &fakeLogRepo{}
	m := &fakeMailer{failTo: map[string]error{"admin1@gym.cl": errors.New("mailbox full")}}
	svc := newService(repo, m, service.NoThrottle{})

	svc.SendReport(context.Background(), []model.ReminderOutcome{
		{Email: "a@gym.cl", Status: model.OutcomeSuccess},
	}, []string{"admin1@gym.cl", "admin2@gym.cl"}, "")

	require.Len(t, m.sent, 1)
	assert.Equal(t, "admin2@gym.cl", m.sent[0].To)
}
