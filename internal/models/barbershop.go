package models

import (
	"time"

	"gorm.io/datatypes"
)

type Barbershop struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Slug        string         `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Address     string         `gorm:"size:255" json:"address"`
	Description string         `gorm:"size:500" json:"description"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	Phones      datatypes.JSON `gorm:"type:jsonb" json:"phones"`
	Timezone    string         `gorm:"size:50" json:"timezone"`

	Services []Service `json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
