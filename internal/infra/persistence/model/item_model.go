package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel is the GORM-specific struct for the 'items' table.
// Lost and found reports share the table and are partitioned by item_type.
type ItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ItemType      string    `gorm:"type:text;not null;index:idx_items_type_created,priority:1"`
	UserID        string    `gorm:"type:text"`
	Title         string    `gorm:"type:text;not null"`
	Description   string    `gorm:"type:text;not null"`
	Category      string    `gorm:"type:text;not null;index"`
	Building      string    `gorm:"type:text;not null"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	PhotoURL      string    `gorm:"type:text"`
	ReporterEmail string    `gorm:"type:text;not null"`
	ReporterName  string    `gorm:"type:text"`
	PushToken     string    `gorm:"type:text"`
	Status        string    `gorm:"type:text;not null;default:'open'"`
	CreatedAt     time.Time `gorm:"not null;index:idx_items_type_created,priority:2,sort:desc"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
