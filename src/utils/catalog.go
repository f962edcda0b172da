package utils

import (
	"errors"
	"time"

	"culturebites/src/models"
	"culturebites/src/types"

	"gorm.io/gorm"
)

// VisibleEvents keeps only events a guest may see: the event has a cook
// attached and an accepted collaboration backs that pairing. The filter
// is pure and recomputed on every read; cook_id alone is never trusted
// as a visibility flag.
func VisibleEvents(events []models.Event, collaborations []models.CollaborationRequest) []models.Event {
	type pairing struct {
		hostID uint
		cookID uint
	}
	accepted := map[pairing]bool{}
	for _, c := range collaborations {
		if c.Status == types.COLLABORATION_ACCEPTED {
			accepted[pairing{hostID: c.ToHostID, cookID: c.FromCookID}] = true
		}
	}
	visible := []models.Event{}
	for _, e := range events {
		if e.CookID == nil {
			continue
		}
		if !accepted[pairing{hostID: e.HostID, cookID: *e.CookID}] {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// ListVisibleEvents is the catalog read path backing GET /events. The
// store narrows to upcoming events with a future date; the visibility
// predicate runs on top of that.
func ListVisibleEvents(db *gorm.DB, now time.Time) ([]models.Event, error) {
	events := []models.Event{}
	err := db.Preload("Cook").
		Where("status = ? AND date >= ? AND cook_id IS NOT NULL", types.EVENT_UPCOMING, startOfDay(now)).
		Order("date asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	collaborations := []models.CollaborationRequest{}
	err = db.
		Where(&models.CollaborationRequest{Status: types.COLLABORATION_ACCEPTED}).
		Find(&collaborations).Error
	if err != nil {
		return nil, err
	}
	return VisibleEvents(events, collaborations), nil
}

// GetVisibleEvent loads a single event through the same visibility
// predicate as the catalog list. Invisible events are reported as not
// found.
func GetVisibleEvent(db *gorm.DB, eventID uint, now time.Time) (*models.Event, error) {
	var event models.Event
	err := db.Preload("Cook").
		Where("id = ? AND status = ? AND date >= ?", eventID, types.EVENT_UPCOMING, startOfDay(now)).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	collaborations := []models.CollaborationRequest{}
	err = db.
		Where(&models.CollaborationRequest{ToHostID: event.HostID, Status: types.COLLABORATION_ACCEPTED}).
		Find(&collaborations).Error
	if err != nil {
		return nil, err
	}
	if len(VisibleEvents([]models.Event{event}, collaborations)) == 0 {
		return nil, ErrEventNotFound
	}
	return &event, nil
}
