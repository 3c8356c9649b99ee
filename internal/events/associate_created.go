package events

import "time"

const (
	AssociateLifecycleTopic = "coope.associate.lifecycle.v1"
	AssociateCreatedType    = "associate_created"
)

type AssociateCreatedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	AssociateID      string    `json:"associate_id"`
	MembershipNumber string    `json:"membership_number"`
	NationalID       string    `json:"national_id"`
	CreatedBy        string    `json:"created_by"`
	OccurredAt       time.Time `json:"occurred_at"`
}
