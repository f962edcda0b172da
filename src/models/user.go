package models

import "culturebites/src/types"

type User struct {
	ID    uint       `gorm:"primarykey" json:"id"`
	UID   string     `json:"uid,omitempty"`
	Email string     `json:"email,omitempty"`
	Name  string     `json:"name,omitempty"`
	Role  types.Role `gorm:"default:'guest'" json:"role,omitempty"`

	types.Timestamps
}
