package entities

import "time"

// QuestionnaireValidity is how long a client has to answer a questionnaire.
const QuestionnaireValidity = 30 * 24 * time.Hour

type QuestionnaireStatus string

const (
	QuestionnaireStatusSent       QuestionnaireStatus = "sent"
	QuestionnaireStatusInProgress QuestionnaireStatus = "in-progress"
	QuestionnaireStatusCompleted  QuestionnaireStatus = "completed"
	QuestionnaireStatusExpired    QuestionnaireStatus = "expired"
)

// QuestionResponse is one answer. Answer holds a string for free-text questions
// and a list of option ids (or custom text) for checkbox questions.
type QuestionResponse struct {
	QuestionID string `json:"questionId"`
	Answer     any    `json:"answer"`
}

// IsEmpty reports whether the answer carries no usable value.
func (r QuestionResponse) IsEmpty() bool {
	switch v := r.Answer.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

// Questionnaire is an intake form instance sent to one client.
//
// Storage model (key-value):
//   - questionnaire:<id>            JSON document
//   - questionnaire:ids             set of every questionnaire id
//   - questionnaire:email:<lower>   set of ids owned by a client email
//
// Expiry is computed at read time: a questionnaire read after ExpiresAt that was
// never completed is flipped to expired and written back.
type Questionnaire struct {
	ID          string              `json:"id"`
	TemplateID  string              `json:"templateId"`
	Client      ClientInfo          `json:"client"`
	Title       string              `json:"title"`
	Status      QuestionnaireStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	SentAt      *time.Time          `json:"sentAt,omitempty"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	ExpiresAt   time.Time           `json:"expiresAt"`
	Responses   []QuestionResponse  `json:"responses"`
	Notes       string              `json:"notes,omitempty"`
	LastViewed  *time.Time          `json:"lastViewed,omitempty"`
	ViewCount   int                 `json:"viewCount,omitempty"`
}

func (q Questionnaire) IsPastExpiry(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

// ShouldExpire reports whether a read at now must flip the status to expired.
func (q Questionnaire) ShouldExpire(now time.Time) bool {
	if q.Status == QuestionnaireStatusCompleted || q.Status == QuestionnaireStatusExpired {
		return false
	}
	return q.IsPastExpiry(now)
}
