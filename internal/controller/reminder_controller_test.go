package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powercave/mail-service/internal/controller"
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/service"
)

// --- Fakes ---

type fakeLogRepo struct {
	entries []*model.EmailLog
	nextID  int
}

func (f *fakeLogRepo) Create(entry *model.EmailLog) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLogRepo) UpdateStatus(id int, status, errorMessage string) error {
	for _, e := range f.entries {
		if e.ID == id {
			e.Status = status
			if status == model.EmailStatusSent {
				now := time.Now()
				e.SentAt = &now
			}
		}
	}
	return nil
}

func (f *fakeLogRepo) FindMostRecentSent(publicID, mailType string, sentAfter time.Time) (*model.EmailLog, error) {
	for _, e := range f.entries {
		if e.PublicID != nil && *e.PublicID == publicID &&
			e.Status == model.EmailStatusSent &&
			e.SentAt != nil && !e.SentAt.Before(sentAfter) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeLogRepo) LatestByTenant() ([]model.EmailLog, error) { return nil, nil }

type fakeMailer struct {
	sent   []model.Mail
	failTo map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, mail model.Mail) (string, error) {
	if err, ok := f.failTo[mail.To]; ok {
		return "", err
	}
	f.sent = append(f.sent, mail)
	return "msg-1", nil
}

func newReminderController(m *fakeMailer) *controller.ReminderController {
	return &controller.ReminderController{
		Reminders: &service.ReminderService{
			LogRepo:  &fakeLogRepo{},
			Mailer:   m,
			Throttle: service.NoThrottle{},
		},
	}
}

func postReminders(t *testing.T, ctrl *controller.ReminderController, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/mail/send_reminder", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.SendReminders(w, req)
	return w
}

// --- Tests ---

func TestSendRemindersHappyPath(t *testing.T) {
	m := &fakeMailer{}
	ctrl := newReminderController(m)

	w := postReminders(t, ctrl, map[string]any{
		"reminders": []map[string]string{
			{"to": "a@gym.cl", "userName": "Ana", "planName": "Gold", "expiryDate": "2026-09-15", "publicId": "pub-1"},
			{"to": "b@gym.cl", "userName": "Ben", "planName": "Silver", "expiryDate": "2026-09-20", "publicId": "pub-2"},
		},
		"report_recipients": []string{"admin@gym.cl"},
		"sentBy":            "cron",
		"gymName":           "Powercave",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, float64(2), resp["total"])
	assert.Equal(t, float64(2), resp["successful"])
	assert.Equal(t, float64(0), resp["failed"])
	assert.NotContains(t, resp, "failures")

	// Two reminders plus one report mail.
	require.Len(t, m.sent, 3)
	assert.Contains(t, m.sent[0].Subject, "Powercave")
	assert.Equal(t, "admin@gym.cl", m.sent[2].To)
}

func TestSendRemindersReportsFailures(t *testing.T) {
	m := &fakeMailer{failTo: map[string]error{"b@gym.cl": errors.New("bounced")}}
	ctrl := newReminderController(m)

	w := postReminders(t, ctrl, map[string]any{
		"reminders": []map[string]string{
			{"to": "a@gym.cl", "userName": "Ana", "planName": "Gold", "expiryDate": "2026-09-15"},
			{"to": "b@gym.cl", "userName": "Ben", "planName": "Silver", "expiryDate": "2026-09-20"},
		},
		"report_recipients": []string{"admin@gym.cl"},
	})

	// Per-item failures are a normal end state, not an error response.
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, float64(1), resp["successful"])
	assert.Equal(t, float64(1), resp["failed"])
	require.Contains(t, resp, "failures")
}

func TestSendRemindersRejectsMissingBody(t *testing.T) {
	ctrl := newReminderController(&fakeMailer{})

	req := httptest.NewRequest("POST", "/mail/send_reminder", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	ctrl.SendReminders(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendRemindersRejectsEmptyReportRecipients(t *testing.T) {
	ctrl := newReminderController(&fakeMailer{})

	w := postReminders(t, ctrl, map[string]any{
		"reminders": []map[string]string{
			{"to": "a@gym.cl", "userName": "Ana", "planName": "Gold", "expiryDate": "2026-09-15"},
		},
		"report_recipients": []string{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendRemindersRejectsIncompleteItem(t *testing.T) {
	m := &fakeMailer{}
	ctrl := newReminderController(m)

	w := postReminders(t, ctrl, map[string]any{
		"reminders": []map[string]string{
			{"to": "a@gym.cl", "userName": "Ana", "planName": "Gold", "expiryDate": "2026-09-15"},
			{"to": "b@gym.cl", "userName": "Ben"},
		},
		"report_recipients": []string{"admin@gym.cl"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "index 1")
	assert.Empty(t, m.sent, "nothing is sent when validation fails")
}

func TestSendDiscountEmailBulk(t *testing.T) {
	m := &fakeMailer{}
	ctrl := &controller.DiscountController{
		Mails: &service.MailService{Mailer: m, Throttle: service.NoThrottle{}},
	}

	body, err := json.Marshal(map[string]any{
		"emails": []map[string]string{
			{"to": "a@gym.cl", "userName": "Ana", "promotionEndDate": "2026-12-31"},
			{"to": "b@gym.cl", "userName": "Ben", "promotionEndDate": "2026-12-31"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/mail/send_discount_email", bytes.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.SendDiscountEmail(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, m.sent, 2)
	assert.NotEqual(t, m.sent[0].Subject, m.sent[1].Subject, "bulk discount subjects must be unique")
}
