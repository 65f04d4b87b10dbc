package model

import (
	"strings"
	"time"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationJobPayload mirrors entity.JobPayload and is stored as JSON.
type NotificationJobPayload struct {
	ItemName         string  `json:"item_name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	Location         string  `json:"location"`
	Role             string  `json:"role,omitempty"`
	CounterpartID    string  `json:"counterpart_id,omitempty"`
	CounterpartTitle string  `json:"counterpart_title,omitempty"`
	CounterpartPlace string  `json:"counterpart_place,omitempty"`
	Score            float64 `json:"score,omitempty"`
}

// NotificationJobModel is the GORM-specific struct for the 'notification_jobs' table.
type NotificationJobModel struct {
	ID                uuid.UUID              `gorm:"type:uuid;primary_key"`
	Kind              string                 `gorm:"type:text;not null"`
	ItemID            uuid.UUID              `gorm:"type:uuid;not null;index"`
	MatchID           *uuid.UUID             `gorm:"type:uuid;index"`
	RecipientEmail    string                 `gorm:"type:text;not null"`
	RecipientName     string                 `gorm:"type:text"`
	PushToken         string                 `gorm:"type:text"`
	Payload           NotificationJobPayload `gorm:"type:jsonb;serializer:json;not null"`
	Status            string                 `gorm:"type:text;not null;default:'pending';index:idx_jobs_status_created,priority:1"`
	Attempts          int                    `gorm:"not null;default:0"`
	DeliveredChannels string                 `gorm:"type:text;not null;default:''"` // Comma-separated channel names.
	LastError         string                 `gorm:"type:text"`
	CreatedAt         time.Time              `gorm:"not null;index:idx_jobs_status_created,priority:2"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationJobModel) TableName() string {
	return "notification_jobs"
}

// EncodeChannels stores delivered channels as a comma-separated column.
func EncodeChannels(channels []entity.Channel) string {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, string(ch))
	}

	return strings.Join(names, ",")
}

// DecodeChannels is the inverse of EncodeChannels.
func DecodeChannels(raw string) []entity.Channel {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	channels := make([]entity.Channel, 0, len(parts))
	for _, part := range parts {
		channels = append(channels, entity.Channel(part))
	}

	return channels
}
