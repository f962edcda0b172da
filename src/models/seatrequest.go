package models

import "culturebites/src/types"

// SeatRequest holds a reserved seat while pending. Leaving pending is
// paired with exactly one seat mutation: approve keeps the seat,
// waitlist and decline give it back.
type SeatRequest struct {
	ID        uint                    `gorm:"primarykey" json:"id"`
	EventID   uint                    `json:"event_id,omitempty"`
	GuestID   uint                    `json:"guest_id,omitempty"`
	GuestName string                  `json:"guest_name,omitempty"`
	Note      *string                 `json:"note,omitempty"`
	Status    types.SeatRequestStatus `gorm:"default:'pending'" json:"status,omitempty"`

	Event Event `gorm:"foreignKey:event_id" json:"event,omitempty"`
	Guest User  `gorm:"foreignKey:guest_id" json:"-"`

	types.Timestamps
}
