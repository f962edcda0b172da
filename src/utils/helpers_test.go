package utils

import (
	"fmt"
	"log"
	"path"
	"sync"
	"testing"
	"time"

	"culturebites/src/models"
	"culturebites/src/types"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type HelpersTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

func (s *HelpersTestSuite) SetupSuite() {
	dbfile := path.Join(s.T().TempDir(), "ledger.db")
	d, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000", dbfile)), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening test database: %s", err.Error())
	}
	inner, err := d.DB()
	if err != nil {
		log.Fatalf("error accessing inner db instance: %s", err.Error())
	}
	inner.SetMaxOpenConns(1)

	err = d.AutoMigrate(
		&models.User{},
		&models.Host{},
		&models.Cook{},
		&models.Event{},
		&models.CollaborationRequest{},
		&models.SeatRequest{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	s.DB = d
}

func (s *HelpersTestSuite) SetupTest() {
	s.DB.Exec("DELETE FROM seat_requests")
	s.DB.Exec("DELETE FROM collaboration_requests")
	s.DB.Exec("DELETE FROM events")
	s.DB.Exec("DELETE FROM cooks")
	s.DB.Exec("DELETE FROM hosts")
	s.DB.Exec("DELETE FROM users")
}

func (s *HelpersTestSuite) createHost(email string) (*models.User, *models.Host) {
	user := &models.User{Email: email, Name: "Host " + email, Role: types.ROLE_HOST}
	s.Require().NoError(s.DB.Create(user).Error)
	host := &models.Host{UserID: user.ID, Name: user.Name, SpaceTitle: "Home kitchen", Location: "Lisbon", Capacity: 10}
	s.Require().NoError(s.DB.Create(host).Error)
	return user, host
}

func (s *HelpersTestSuite) createCook(email string) (*models.User, *models.Cook) {
	user := &models.User{Email: email, Name: "Cook " + email, Role: types.ROLE_COOK}
	s.Require().NoError(s.DB.Create(user).Error)
	cook := &models.Cook{UserID: user.ID, Name: user.Name, OriginCountry: "Ethiopia"}
	s.Require().NoError(s.DB.Create(cook).Error)
	return user, cook
}

func (s *HelpersTestSuite) createGuest(email string) *models.User {
	user := &models.User{Email: email, Name: "Guest " + email, Role: types.ROLE_GUEST}
	s.Require().NoError(s.DB.Create(user).Error)
	return user
}

func (s *HelpersTestSuite) createEvent(host *models.Host, seats uint, daysOut int) *models.Event {
	event := &models.Event{
		Title:      "Injera night",
		Cuisine:    "Ethiopian",
		HostID:     host.ID,
		Date:       time.Now().AddDate(0, 0, daysOut),
		StartTime:  "19:00",
		EndTime:    "22:00",
		Location:   "Lisbon",
		SeatsTotal: seats,
		SeatsLeft:  seats,
		Status:     types.EVENT_UPCOMING,
	}
	s.Require().NoError(s.DB.Create(event).Error)
	return event
}

func (s *HelpersTestSuite) seatsLeft(eventID uint) uint {
	var event models.Event
	s.Require().NoError(s.DB.First(&event, eventID).Error)
	return event.SeatsLeft
}

func (s *HelpersTestSuite) TestReserveSeat() {
	_, host := s.createHost("host-reserve@example.com")
	event := s.createEvent(host, 2, 5)

	s.NoError(ReserveSeat(s.DB, event.ID))
	s.NoError(ReserveSeat(s.DB, event.ID))
	s.ErrorIs(ReserveSeat(s.DB, event.ID), ErrSoldOut)
	s.Equal(uint(0), s.seatsLeft(event.ID))

	s.ErrorIs(ReserveSeat(s.DB, 99999), ErrEventNotFound)

	canceled := s.createEvent(host, 4, 5)
	s.Require().NoError(s.DB.Model(&models.Event{}).Where("id = ?", canceled.ID).Update("status", types.EVENT_CANCELED).Error)
	s.ErrorIs(ReserveSeat(s.DB, canceled.ID), ErrEventNotFound)
}

func (s *HelpersTestSuite) TestReleaseSeatClampsAtCapacity() {
	_, host := s.createHost("host-release@example.com")
	event := s.createEvent(host, 3, 5)

	s.NoError(ReleaseSeat(s.DB, event.ID))
	s.Equal(uint(3), s.seatsLeft(event.ID))

	s.NoError(ReserveSeat(s.DB, event.ID))
	s.NoError(ReleaseSeat(s.DB, event.ID))
	s.Equal(uint(3), s.seatsLeft(event.ID))
}

func (s *HelpersTestSuite) TestConcurrentReservesNeverOversell() {
	_, host := s.createHost("host-concurrent@example.com")
	event := s.createEvent(host, 3, 5)

	const guests = 10
	results := make(chan error, guests)
	var wg sync.WaitGroup
	for i := 0; i < guests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- ReserveSeat(s.DB, event.ID)
		}()
	}
	wg.Wait()
	close(results)

	reserved, soldOut := 0, 0
	for err := range results {
		switch {
		case err == nil:
			reserved++
		case err == ErrSoldOut:
			soldOut++
		default:
			s.FailNowf("unexpected error", "%s", err.Error())
		}
	}
	s.Equal(3, reserved)
	s.Equal(7, soldOut)
	s.Equal(uint(0), s.seatsLeft(event.ID))
}

func (s *HelpersTestSuite) TestCreateSeatRequestBlocksDuplicates() {
	_, host := s.createHost("host-dup@example.com")
	hostUser := host.UserID
	guest := s.createGuest("guest-dup@example.com")
	event := s.createEvent(host, 5, 5)

	body := &types.CreateSeatRequestBody{EventID: event.ID}
	request, err := CreateSeatRequest(s.DB, guest.ID, guest.Name, body)
	s.Require().NoError(err)
	s.Equal(types.SEAT_REQUEST_PENDING, request.Status)
	s.Equal(uint(4), s.seatsLeft(event.ID))

	_, err = CreateSeatRequest(s.DB, guest.ID, guest.Name, body)
	s.ErrorIs(err, ErrAlreadyRequested)
	s.Equal(uint(4), s.seatsLeft(event.ID))

	_, err = DeclineSeatRequest(s.DB, hostUser, request.ID)
	s.Require().NoError(err)
	s.Equal(uint(5), s.seatsLeft(event.ID))

	_, err = CreateSeatRequest(s.DB, guest.ID, guest.Name, body)
	s.NoError(err)
	s.Equal(uint(4), s.seatsLeft(event.ID))
}

func (s *HelpersTestSuite) TestSeatRequestTransitions() {
	hostUser, host := s.createHost("host-transitions@example.com")
	otherUser, _ := s.createHost("host-other@example.com")
	guest := s.createGuest("guest-transitions@example.com")
	event := s.createEvent(host, 4, 5)

	approveMe, err := CreateSeatRequest(s.DB, guest.ID, guest.Name, &types.CreateSeatRequestBody{EventID: event.ID})
	s.Require().NoError(err)

	_, err = ApproveSeatRequest(s.DB, otherUser.ID, approveMe.ID)
	s.ErrorIs(err, ErrRequestNotFound)

	approved, err := ApproveSeatRequest(s.DB, hostUser.ID, approveMe.ID)
	s.Require().NoError(err)
	s.Equal(types.SEAT_REQUEST_APPROVED, approved.Status)
	s.Equal(uint(3), s.seatsLeft(event.ID))

	_, err = DeclineSeatRequest(s.DB, hostUser.ID, approveMe.ID)
	s.ErrorIs(err, ErrInvalidTransition)
	s.Equal(uint(3), s.seatsLeft(event.ID))

	guest2 := s.createGuest("guest-waitlist@example.com")
	waitlistMe, err := CreateSeatRequest(s.DB, guest2.ID, guest2.Name, &types.CreateSeatRequestBody{EventID: event.ID})
	s.Require().NoError(err)
	s.Equal(uint(2), s.seatsLeft(event.ID))

	waitlisted, err := WaitlistSeatRequest(s.DB, hostUser.ID, waitlistMe.ID)
	s.Require().NoError(err)
	s.Equal(types.SEAT_REQUEST_WAITLIST, waitlisted.Status)
	s.Equal(uint(3), s.seatsLeft(event.ID))

	_, err = WaitlistSeatRequest(s.DB, hostUser.ID, waitlistMe.ID)
	s.ErrorIs(err, ErrInvalidTransition)
	s.Equal(uint(3), s.seatsLeft(event.ID))
}

func (s *HelpersTestSuite) TestAcceptCollaborationFirstCookKeepsSlot() {
	hostUser, host := s.createHost("host-collab@example.com")
	_, cook1 := s.createCook("cook-one@example.com")
	_, cook2 := s.createCook("cook-two@example.com")
	event := s.createEvent(host, 6, 10)

	first, err := ProposeCollaboration(s.DB, cook1.UserID, &types.CreateCollaborationRequestBody{
		ToHostID: host.ID,
		EventID:  &event.ID,
		Message:  "I would love to cook injera for your guests",
	})
	s.Require().NoError(err)
	second, err := ProposeCollaboration(s.DB, cook2.UserID, &types.CreateCollaborationRequestBody{
		ToHostID: host.ID,
		EventID:  &event.ID,
		Message:  "My dumplings would be perfect here",
	})
	s.Require().NoError(err)

	accepted, err := AcceptCollaboration(s.DB, hostUser.ID, first.ID)
	s.Require().NoError(err)
	s.Equal(types.COLLABORATION_ACCEPTED, accepted.Status)

	var updated models.Event
	s.Require().NoError(s.DB.First(&updated, event.ID).Error)
	s.Require().NotNil(updated.CookID)
	s.Equal(cook1.ID, *updated.CookID)

	accepted2, err := AcceptCollaboration(s.DB, hostUser.ID, second.ID)
	s.Require().NoError(err)
	s.Equal(types.COLLABORATION_ACCEPTED, accepted2.Status)

	s.Require().NoError(s.DB.First(&updated, event.ID).Error)
	s.Equal(cook1.ID, *updated.CookID)

	_, err = AcceptCollaboration(s.DB, hostUser.ID, first.ID)
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *HelpersTestSuite) TestDeclineCollaboration() {
	hostUser, host := s.createHost("host-decline@example.com")
	_, cook := s.createCook("cook-decline@example.com")

	proposal, err := ProposeCollaboration(s.DB, cook.UserID, &types.CreateCollaborationRequestBody{
		ToHostID: host.ID,
		Message:  "Open to cooking any weekend",
	})
	s.Require().NoError(err)

	declined, err := DeclineCollaboration(s.DB, hostUser.ID, proposal.ID)
	s.Require().NoError(err)
	s.Equal(types.COLLABORATION_DECLINED, declined.Status)

	_, err = AcceptCollaboration(s.DB, hostUser.ID, proposal.ID)
	s.ErrorIs(err, ErrInvalidTransition)

	otherUser, _ := s.createHost("host-stranger@example.com")
	_, err = DeclineCollaboration(s.DB, otherUser.ID, proposal.ID)
	s.ErrorIs(err, ErrCollaborationNotFound)
}

func (s *HelpersTestSuite) TestProposeCollaborationScopesEvent() {
	_, host := s.createHost("host-scope@example.com")
	_, otherHost := s.createHost("host-scope-other@example.com")
	_, cook := s.createCook("cook-scope@example.com")
	event := s.createEvent(otherHost, 6, 10)

	_, err := ProposeCollaboration(s.DB, cook.UserID, &types.CreateCollaborationRequestBody{
		ToHostID: host.ID,
		EventID:  &event.ID,
		Message:  "Wrong host for this event",
	})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *HelpersTestSuite) TestCancelEvent() {
	hostUser, host := s.createHost("host-cancel@example.com")
	event := s.createEvent(host, 6, 10)

	canceled, err := CancelEvent(s.DB, hostUser.ID, event.ID)
	s.Require().NoError(err)
	s.Equal(types.EVENT_CANCELED, canceled.Status)

	_, err = CancelEvent(s.DB, hostUser.ID, event.ID)
	s.ErrorIs(err, ErrInvalidTransition)

	otherUser, _ := s.createHost("host-cancel-other@example.com")
	event2 := s.createEvent(host, 6, 10)
	_, err = CancelEvent(s.DB, otherUser.ID, event2.ID)
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *HelpersTestSuite) TestListVisibleEvents() {
	hostUser, host := s.createHost("host-list@example.com")
	_, cook := s.createCook("cook-list@example.com")

	paired := s.createEvent(host, 6, 3)
	unpaired := s.createEvent(host, 6, 10)
	canceled := s.createEvent(host, 6, 5)

	for _, eventID := range []uint{paired.ID, canceled.ID} {
		id := eventID
		proposal, err := ProposeCollaboration(s.DB, cook.UserID, &types.CreateCollaborationRequestBody{
			ToHostID: host.ID,
			EventID:  &id,
			Message:  "Let me cook for this one",
		})
		s.Require().NoError(err)
		_, err = AcceptCollaboration(s.DB, hostUser.ID, proposal.ID)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.DB.Model(&models.Event{}).Where("id = ?", canceled.ID).Update("status", types.EVENT_CANCELED).Error)

	events, err := ListVisibleEvents(s.DB, time.Now())
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(paired.ID, events[0].ID)

	_, err = GetVisibleEvent(s.DB, paired.ID, time.Now())
	s.NoError(err)
	_, err = GetVisibleEvent(s.DB, unpaired.ID, time.Now())
	s.ErrorIs(err, ErrEventNotFound)
	_, err = GetVisibleEvent(s.DB, canceled.ID, time.Now())
	s.ErrorIs(err, ErrEventNotFound)
}

func TestHelpersRunner(t *testing.T) {
	suite.Run(t, new(HelpersTestSuite))
}
