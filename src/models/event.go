package models

import (
	"time"

	"culturebites/src/types"
)

// Event is a dining event published by a host. CookID stays null until
// a collaboration is accepted; seat counters are mutated only through
// the inventory helpers in utils.
type Event struct {
	ID         uint              `gorm:"primarykey" json:"id"`
	Title      string            `json:"title,omitempty"`
	Slug       string            `json:"slug,omitempty"`
	Cuisine    string            `json:"cuisine,omitempty"`
	HostID     uint              `json:"host_id,omitempty"`
	CookID     *uint             `json:"cook_id,omitempty"`
	Date       time.Time         `json:"date,omitempty"`
	StartTime  string            `json:"start_time,omitempty"`
	EndTime    string            `json:"end_time,omitempty"`
	Location   string            `json:"location,omitempty"`
	Images     types.StringArray `gorm:"type:jsonb" json:"images,omitempty"`
	SeatsTotal uint              `json:"seats_total,omitempty"`
	SeatsLeft  uint              `json:"seats_left"`
	Status     types.EventStatus `gorm:"default:'upcoming'" json:"status,omitempty"`

	Host Host  `gorm:"foreignKey:host_id" json:"-"`
	Cook *Cook `gorm:"foreignKey:cook_id" json:"cook,omitempty"`

	types.Timestamps
}
