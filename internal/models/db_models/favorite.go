package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favorite struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID      string       `gorm:"not null;index"`
	Destination string
	StartDate   string
	EndDate     string
	Itinerary   JSONDocument `gorm:"type:jsonb"`
	Flights     JSONDocument `gorm:"type:jsonb"`
	Hotels      JSONDocument `gorm:"type:jsonb"`
	CreatedAt   time.Time    `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
