package model

// Per-reminder outcome statuses.
const (
	OutcomeSuccess = "success"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// ReminderOutcome classifies one reminder from a bulk batch. Exactly
// one is produced per input reminder, in input order.
type ReminderOutcome struct {
	PublicID string `json:"publicId,omitempty"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// FailedRecipient is one entry of a bulk result's failure list.
type FailedRecipient struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// BulkReminderResult aggregates a whole batch. The invariant
// Successful + len(Failed) + skipped = len(Outcomes) always holds.
type BulkReminderResult struct {
	Successful int               `json:"successful"`
	Failed     []FailedRecipient `json:"failed"`
	Outcomes   []ReminderOutcome `json:"outcomes"`
}

// Skipped counts the outcomes suppressed by the cooldown window.
func (r *BulkReminderResult) Skipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == OutcomeSkipped {
			n++
		}
	}
	return n
}
