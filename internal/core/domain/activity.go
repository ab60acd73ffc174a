package domain

import "time"

// Activity actions recorded on project mutations.
const (
	ActionProjectCreated = "project_created"
	ActionProjectUpdated = "project_updated"
	ActionProjectDeleted = "project_deleted"
)

// Activity is a single audit-trail entry. Entries are written asynchronously
// and are best-effort: losing one never fails the mutation that produced it.
type Activity struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
