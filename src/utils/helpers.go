package utils

import (
	"errors"
	"log"
	"time"

	"culturebites/src/models"
	"culturebites/src/types"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrSoldOut               = errors.New("no seats left")
	ErrAlreadyRequested      = errors.New("guest already has an active request for this event")
	ErrRequestNotFound       = errors.New("seat request not found")
	ErrCollaborationNotFound = errors.New("collaboration request not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

// ReserveSeat takes one seat from an upcoming event. The decrement and
// the availability check happen in a single statement so concurrent
// requests can never oversell.
func ReserveSeat(tx *gorm.DB, eventID uint) error {
	res := tx.Model(&models.Event{}).
		Where("id = ? AND status = ? AND seats_left > 0", eventID, types.EVENT_UPCOMING).
		Update("seats_left", gorm.Expr("seats_left - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Event{}).
			Where("id = ? AND status = ?", eventID, types.EVENT_UPCOMING).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEventNotFound
		}
		return ErrSoldOut
	}
	return nil
}

// ReleaseSeat gives one seat back, clamped at the event's capacity.
func ReleaseSeat(tx *gorm.DB, eventID uint) error {
	res := tx.Model(&models.Event{}).
		Where("id = ? AND seats_left < seats_total", eventID).
		Update("seats_left", gorm.Expr("seats_left + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("release skipped for event %d: ledger already at capacity\n", eventID)
	}
	return nil
}

// CreateSeatRequest reserves a seat and records the pending request in
// one transaction. A guest with a pending or approved request for the
// same event cannot request again.
func CreateSeatRequest(db *gorm.DB, guestID uint, guestName string, body *types.CreateSeatRequestBody) (*models.SeatRequest, error) {
	request := &models.SeatRequest{
		EventID:   body.EventID,
		GuestID:   guestID,
		GuestName: guestName,
		Note:      body.Note,
		Status:    types.SEAT_REQUEST_PENDING,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.SeatRequest{}).
			Where("event_id = ? AND guest_id = ? AND status IN ?", body.EventID, guestID,
				[]types.SeatRequestStatus{types.SEAT_REQUEST_PENDING, types.SEAT_REQUEST_APPROVED}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrAlreadyRequested
		}
		if err := ReserveSeat(tx, body.EventID); err != nil {
			return err
		}
		return tx.Create(request).Error
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// transitionSeatRequest moves a pending request to its terminal status.
// Only the host of the request's event may act on it; requests outside
// the host's events are reported as not found. Statuses that release
// the reserved seat do so in the same transaction.
func transitionSeatRequest(db *gorm.DB, hostUserID uint, requestID uint, to types.SeatRequestStatus, release bool) (*models.SeatRequest, error) {
	var request models.SeatRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		var host models.Host
		if err := tx.Where(&models.Host{UserID: hostUserID}).First(&host).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if err := tx.Preload("Event").First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.Event.HostID != host.ID {
			return ErrRequestNotFound
		}
		res := tx.Model(&models.SeatRequest{}).
			Where("id = ? AND status = ?", requestID, types.SEAT_REQUEST_PENDING).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		if release {
			if err := ReleaseSeat(tx, request.EventID); err != nil {
				return err
			}
		}
		request.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func ApproveSeatRequest(db *gorm.DB, hostUserID uint, requestID uint) (*models.SeatRequest, error) {
	return transitionSeatRequest(db, hostUserID, requestID, types.SEAT_REQUEST_APPROVED, false)
}

func WaitlistSeatRequest(db *gorm.DB, hostUserID uint, requestID uint) (*models.SeatRequest, error) {
	return transitionSeatRequest(db, hostUserID, requestID, types.SEAT_REQUEST_WAITLIST, true)
}

func DeclineSeatRequest(db *gorm.DB, hostUserID uint, requestID uint) (*models.SeatRequest, error) {
	return transitionSeatRequest(db, hostUserID, requestID, types.SEAT_REQUEST_DECLINED, true)
}

// ProposeCollaboration records a cook's pending proposal to a host. A
// proposal tied to an event must target an event owned by that host.
func ProposeCollaboration(db *gorm.DB, cookUserID uint, body *types.CreateCollaborationRequestBody) (*models.CollaborationRequest, error) {
	var cook models.Cook
	if err := db.Where(&models.Cook{UserID: cookUserID}).First(&cook).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	var host models.Host
	if err := db.First(&host, body.ToHostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if body.EventID != nil {
		var count int64
		if err := db.Model(&models.Event{}).
			Where("id = ? AND host_id = ?", *body.EventID, host.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrEventNotFound
		}
	}
	proposal := &models.CollaborationRequest{
		FromCookID:     cook.ID,
		ToHostID:       host.ID,
		EventID:        body.EventID,
		Message:        body.Message,
		ProposedDishes: body.ProposedDishes,
		Status:         types.COLLABORATION_PENDING,
	}
	if err := db.Create(proposal).Error; err != nil {
		return nil, err
	}
	return proposal, nil
}

// AcceptCollaboration resolves a pending proposal in the host's favor.
// When the proposal is tied to an event, the cook is attached to it
// only if no cook holds the slot yet. A later acceptance never evicts
// an earlier cook.
func AcceptCollaboration(db *gorm.DB, hostUserID uint, collabID uint) (*models.CollaborationRequest, error) {
	var proposal models.CollaborationRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := scopedCollaboration(tx, hostUserID, collabID, &proposal); err != nil {
			return err
		}
		res := tx.Model(&models.CollaborationRequest{}).
			Where("id = ? AND status = ?", collabID, types.COLLABORATION_PENDING).
			Update("status", types.COLLABORATION_ACCEPTED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		if proposal.EventID != nil {
			assign := tx.Model(&models.Event{}).
				Where("id = ? AND cook_id IS NULL", *proposal.EventID).
				Update("cook_id", proposal.FromCookID)
			if assign.Error != nil {
				return assign.Error
			}
			if assign.RowsAffected == 0 {
				log.Printf("event %d already has a cook; proposal %d accepted without assignment\n", *proposal.EventID, collabID)
			}
		}
		proposal.Status = types.COLLABORATION_ACCEPTED
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// DeclineCollaboration resolves a pending proposal against the cook.
func DeclineCollaboration(db *gorm.DB, hostUserID uint, collabID uint) (*models.CollaborationRequest, error) {
	var proposal models.CollaborationRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := scopedCollaboration(tx, hostUserID, collabID, &proposal); err != nil {
			return err
		}
		res := tx.Model(&models.CollaborationRequest{}).
			Where("id = ? AND status = ?", collabID, types.COLLABORATION_PENDING).
			Update("status", types.COLLABORATION_DECLINED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		proposal.Status = types.COLLABORATION_DECLINED
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func scopedCollaboration(tx *gorm.DB, hostUserID uint, collabID uint, proposal *models.CollaborationRequest) error {
	var host models.Host
	if err := tx.Where(&models.Host{UserID: hostUserID}).First(&host).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollaborationNotFound
		}
		return err
	}
	if err := tx.First(proposal, collabID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollaborationNotFound
		}
		return err
	}
	if proposal.ToHostID != host.ID {
		return ErrCollaborationNotFound
	}
	return nil
}

// CancelEvent flips an upcoming event owned by the host to canceled.
func CancelEvent(db *gorm.DB, hostUserID uint, eventID uint) (*models.Event, error) {
	var event models.Event
	err := db.Transaction(func(tx *gorm.DB) error {
		var host models.Host
		if err := tx.Where(&models.Host{UserID: hostUserID}).First(&host).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if err := tx.Where("id = ? AND host_id = ?", eventID, host.ID).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		res := tx.Model(&models.Event{}).
			Where("id = ? AND status = ?", eventID, types.EVENT_UPCOMING).
			Update("status", types.EVENT_CANCELED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		event.Status = types.EVENT_CANCELED
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
