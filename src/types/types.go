package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// StringArray stores a list of strings as a JSON column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Role string

const (
	ROLE_GUEST Role = "guest"
	ROLE_HOST  Role = "host"
	ROLE_COOK  Role = "cook"
)

type EventStatus string

const (
	EVENT_UPCOMING  EventStatus = "upcoming"
	EVENT_CANCELED  EventStatus = "canceled"
	EVENT_COMPLETED EventStatus = "completed"
)

type CollaborationStatus string

const (
	COLLABORATION_PENDING  CollaborationStatus = "pending"
	COLLABORATION_ACCEPTED CollaborationStatus = "accepted"
	COLLABORATION_DECLINED CollaborationStatus = "declined"
)

type SeatRequestStatus string

const (
	SEAT_REQUEST_PENDING  SeatRequestStatus = "pending"
	SEAT_REQUEST_APPROVED SeatRequestStatus = "approved"
	SEAT_REQUEST_WAITLIST SeatRequestStatus = "waitlist"
	SEAT_REQUEST_DECLINED SeatRequestStatus = "declined"
)

type CreateEventRequestBody struct {
	Title     string   `json:"title" binding:"required"`
	Cuisine   string   `json:"cuisine" binding:"required"`
	Date      string   `json:"date" binding:"required,bookabledate" time_format:"2006-01-02"`
	StartTime string   `json:"start_time" binding:"required"`
	EndTime   string   `json:"end_time" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	Images    []string `json:"images,omitempty"`
	Seats     uint     `json:"seats" binding:"required,min=1"`
}

type CreateCollaborationRequestBody struct {
	ToHostID       uint     `json:"to_host" binding:"required"`
	EventID        *uint    `json:"event,omitempty"`
	Message        string   `json:"message" binding:"required"`
	ProposedDishes []string `json:"proposed_dishes,omitempty" binding:"max=5"`
}

type CreateSeatRequestBody struct {
	EventID uint    `json:"event" binding:"required"`
	Note    *string `json:"note,omitempty"`
}

type CreateHostRequestBody struct {
	Name       string   `json:"name" binding:"required"`
	SpaceTitle string   `json:"space_title" binding:"required"`
	SpaceDesc  string   `json:"space_desc,omitempty"`
	Location   string   `json:"location" binding:"required"`
	Capacity   uint     `json:"capacity" binding:"required,min=1"`
	Photos     []string `json:"photos,omitempty"`
}

type CreateCookRequestBody struct {
	Name          string   `json:"name" binding:"required"`
	OriginCountry string   `json:"origin_country" binding:"required"`
	Specialties   []string `json:"specialties,omitempty"`
	Story         string   `json:"story,omitempty"`
	CuisineImages []string `json:"cuisine_images,omitempty"`
}

type RecommendRequestBody struct {
	Interests []string `json:"interests"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

// Recommendation is the shared output shape of the external ranking
// service and the local fallback scorer. The two must stay
// interchangeable: callers cannot tell which path produced the result.
type Recommendation struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

type Photo struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	LargeURL     string `json:"largeUrl"`
	Photographer string `json:"photographer"`
}

type SeatRequestQueryFilters struct {
	Hosting bool `form:"hosting,omitempty" binding:"omitempty"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Metadata map[string]any
