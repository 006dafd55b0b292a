package shared

import (
	"encoding/json"
	"time"

	"premium-reconciler/internal/domain/user"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID           user.ID
	Username     string
	FirstName    string
	JoinedAt     time.Time
	PremiumUntil *time.Time
	Points       int64
}

const (
	NotificationKindPremiumActivated = "premium_activated"
	NotificationTopicPayments        = "payments"
	NotificationKindBroadcast        = "broadcast"
	NotificationTopicAdmin           = "admin"
)

type JobStatus string

const (
	JobStatusQueued JobStatus = "queued"
	JobStatusSent   JobStatus = "sent"
	JobStatusFailed JobStatus = "failed"
)

type NewNotificationJob struct {
	Kind      string
	Topic     string
	Recipient user.ID
	Payload   json.RawMessage
	RunAt     time.Time
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Recipient user.ID
	Payload   json.RawMessage
	Status    JobStatus
	Attempts  int32
	LastError *string
	RunAt     time.Time
}

// PremiumActivatedPayload is the body of a premium_activated job.
type PremiumActivatedPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	Code        string    `json:"code"`
	AmountTON   string    `json:"amount_ton"`
	ActiveUntil time.Time `json:"active_until"`
	Text        string    `json:"text"`
}

type BroadcastPayload struct {
	Text string `json:"text"`
}
