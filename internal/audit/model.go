package audit

import (
	"time"

	"github.com/google/uuid"
)

// Outcomes of a handled submission.
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Event represents a row in the submission_events table.
type Event struct {
	ID         uuid.UUID `json:"id"`
	RequestID  string    `json:"requestId"`
	FormType   string    `json:"formType"`
	Collection string    `json:"collection"`
	Outcome    string    `json:"outcome"`
	HTTPStatus int       `json:"httpStatus"`
	CMSID      *string   `json:"cmsId"`
	ClientIP   string    `json:"clientIp"`
	CreatedAt  time.Time `json:"createdAt"`
}
