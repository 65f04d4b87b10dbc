package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel is the GORM-specific struct for the 'matches' table.
// The unique pair_key index is what makes a pair recordable only once.
type MatchModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	LostItemID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FoundItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	PairKey     string    `gorm:"type:text;not null;uniqueIndex"`
	Score       float64   `gorm:"not null"`
	DecidedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
