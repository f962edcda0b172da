package models

import "culturebites/src/types"

// CollaborationRequest is a cook's proposal to a host. Status is
// monotonic: once accepted or declined it never transitions again.
type CollaborationRequest struct {
	ID             uint                      `gorm:"primarykey" json:"id"`
	FromCookID     uint                      `json:"from_cook,omitempty"`
	ToHostID       uint                      `json:"to_host,omitempty"`
	EventID        *uint                     `json:"event_id,omitempty"`
	Message        string                    `json:"message,omitempty"`
	ProposedDishes types.StringArray         `gorm:"type:jsonb" json:"proposed_dishes,omitempty"`
	Status         types.CollaborationStatus `gorm:"default:'pending'" json:"status,omitempty"`

	Cook  Cook   `gorm:"foreignKey:from_cook_id" json:"-"`
	Host  Host   `gorm:"foreignKey:to_host_id" json:"-"`
	Event *Event `gorm:"foreignKey:event_id" json:"event,omitempty"`

	types.Timestamps
}
