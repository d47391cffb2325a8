package audit

import "time"

// Entry is one immutable line of the compliance trail. Every punch mutation
// and every adjustment transition appends exactly one entry; entries are
// never updated or removed.
type Entry struct {
	ID         string
	ActorID    string
	EmployeeID string
	Action     string
	Before     *string
	After      *string
	CreatedAt  time.Time
}

const (
	ActionPunchCreated      = "punch_created"
	ActionPunchEdited       = "punch_edited"
	ActionPunchSoftDeleted  = "punch_soft_deleted"
	ActionPunchSynthesized  = "punch_synthesized"
	ActionAdjustmentCreated = "adjustment_created"
	ActionAdjustmentDecided = "adjustment_decided"
)

type EntryResponse struct {
	ID         string  `json:"id"`
	ActorID    string  `json:"actor_id"`
	EmployeeID string  `json:"employee_id"`
	Action     string  `json:"action"`
	Before     *string `json:"before,omitempty"`
	After      *string `json:"after,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
