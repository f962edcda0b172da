package models

import "culturebites/src/types"

type Cook struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	UserID        uint              `json:"user_id,omitempty"`
	Name          string            `json:"name,omitempty"`
	ProfileImage  *string           `json:"profile_image,omitempty"`
	OriginCountry string            `json:"origin_country,omitempty"`
	Specialties   types.StringArray `gorm:"type:jsonb" json:"specialties,omitempty"`
	Story         string            `json:"story,omitempty"`
	CuisineImages types.StringArray `gorm:"type:jsonb" json:"cuisine_images,omitempty"`

	User User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
