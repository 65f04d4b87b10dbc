package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// JobKind identifies the message a NotificationJob carries.
type JobKind string

const (
	JobKindLostConfirmation  JobKind = "lost_confirmation"
	JobKindFoundConfirmation JobKind = "found_confirmation"
	JobKindMatchAlert        JobKind = "match_alert"
)

// JobStatus is the delivery state of a NotificationJob.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusSent    JobStatus = "sent"
	JobStatusFailed  JobStatus = "failed"
)

// Channel is a notification medium.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// RecipientRole tells a match alert which side of the pair the recipient reported.
type RecipientRole string

const (
	RoleOwner  RecipientRole = "owner"  // Reported the item lost.
	RoleFinder RecipientRole = "finder" // Reported the item found.
)

// JobPayload is the item summary rendered into a notification.
type JobPayload struct {
	ItemName         string        `json:"item_name"`
	Description      string        `json:"description"`
	Category         Category      `json:"category"`
	Location         string        `json:"location"`
	Role             RecipientRole `json:"role,omitempty"`
	CounterpartID    string        `json:"counterpart_id,omitempty"`
	CounterpartTitle string        `json:"counterpart_title,omitempty"`
	CounterpartPlace string        `json:"counterpart_place,omitempty"`
	Score            float64       `json:"score,omitempty"`
}

// NotificationJob is one message to one reporter, fanned out to that reporter's channels.
type NotificationJob struct {
	ID                uuid.UUID  `json:"id"`                 // Job identifier.
	Kind              JobKind    `json:"kind"`               // Confirmation or match alert.
	ItemID            uuid.UUID  `json:"item_id"`            // Report the recipient submitted.
	MatchID           *uuid.UUID `json:"match_id,omitempty"` // Set for match alerts.
	RecipientEmail    string     `json:"recipient_email"`    // Email channel address.
	RecipientName     string     `json:"recipient_name"`     // Greeting name.
	PushToken         string     `json:"push_token"`         // Push channel token, optional.
	Payload           JobPayload `json:"payload"`            // Rendered item summary.
	Status            JobStatus  `json:"status"`             // Pending, sent or failed.
	Attempts          int        `json:"attempts"`           // Delivery rounds performed.
	DeliveredChannels []Channel  `json:"delivered_channels"` // Channels that succeeded.
	LastError         string     `json:"last_error"`         // Most recent transport error.
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Channels returns the channels this job targets.
func (j *NotificationJob) Channels() []Channel {
	channels := []Channel{ChannelEmail}
	if j.PushToken != "" {
		channels = append(channels, ChannelPush)
	}

	return channels
}

// PendingChannels returns the targeted channels that have not succeeded yet.
func (j *NotificationJob) PendingChannels() []Channel {
	pending := make([]Channel, 0, 2)
	for _, ch := range j.Channels() {
		if !slices.Contains(j.DeliveredChannels, ch) {
			pending = append(pending, ch)
		}
	}

	return pending
}

// MarkDelivered records a channel success once.
func (j *NotificationJob) MarkDelivered(ch Channel) {
	if !slices.Contains(j.DeliveredChannels, ch) {
		j.DeliveredChannels = append(j.DeliveredChannels, ch)
	}
}

// NewConfirmationJob builds the reporter's acknowledgement for a new report.
func NewConfirmationJob(item *ItemReport, now time.Time) *NotificationJob {
	kind := JobKindLostConfirmation
	if item.Type == ItemTypeFound {
		kind = JobKindFoundConfirmation
	}

	return &NotificationJob{
		ID:             uuid.New(),
		Kind:           kind,
		ItemID:         item.ID,
		RecipientEmail: item.ReporterEmail,
		RecipientName:  item.ReporterName,
		PushToken:      item.PushToken,
		Payload: JobPayload{
			ItemName:    item.Title,
			Description: item.Description,
			Category:    item.Category,
			Location:    item.Location.Building,
		},
		Status:    JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMatchAlertJob builds the alert for recipient, describing counterpart.
func NewMatchAlertJob(match *MatchRecord, recipient, counterpart *ItemReport, now time.Time) *NotificationJob {
	role := RoleOwner
	if recipient.Type == ItemTypeFound {
		role = RoleFinder
	}
	matchID := match.ID

	return &NotificationJob{
		ID:             uuid.New(),
		Kind:           JobKindMatchAlert,
		ItemID:         recipient.ID,
		MatchID:        &matchID,
		RecipientEmail: recipient.ReporterEmail,
		RecipientName:  recipient.ReporterName,
		PushToken:      recipient.PushToken,
		Payload: JobPayload{
			ItemName:         recipient.Title,
			Description:      recipient.Description,
			Category:         recipient.Category,
			Location:         recipient.Location.Building,
			Role:             role,
			CounterpartID:    counterpart.ID.String(),
			CounterpartTitle: counterpart.Title,
			CounterpartPlace: counterpart.Location.Building,
			Score:            match.Score,
		},
		Status:    JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
