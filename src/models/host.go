package models

import "culturebites/src/types"

type Host struct {
	ID           uint              `gorm:"primarykey" json:"id"`
	UserID       uint              `json:"user_id,omitempty"`
	Name         string            `json:"name,omitempty"`
	ProfileImage *string           `json:"profile_image,omitempty"`
	SpaceTitle   string            `json:"space_title,omitempty"`
	SpaceDesc    string            `json:"space_desc,omitempty"`
	Location     string            `json:"location,omitempty"`
	Capacity     uint              `json:"capacity,omitempty"`
	Photos       types.StringArray `gorm:"type:jsonb" json:"photos,omitempty"`

	User   User    `gorm:"foreignKey:user_id" json:"-"`
	Events []Event `gorm:"foreignKey:host_id" json:"events,omitempty"`

	types.Timestamps
}
