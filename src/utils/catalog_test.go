package utils

import (
	"testing"

	"culturebites/src/models"
	"culturebites/src/types"

	"github.com/stretchr/testify/assert"
)

func TestVisibleEvents(t *testing.T) {
	cook1, cook2 := uint(1), uint(2)
	events := []models.Event{
		{ID: 1, HostID: 10, CookID: &cook1},
		{ID: 2, HostID: 10, CookID: nil},
		{ID: 3, HostID: 11, CookID: &cook1},
		{ID: 4, HostID: 10, CookID: &cook2},
	}
	collaborations := []models.CollaborationRequest{
		{FromCookID: cook1, ToHostID: 10, Status: types.COLLABORATION_ACCEPTED},
		{FromCookID: cook2, ToHostID: 10, Status: types.COLLABORATION_PENDING},
	}

	t.Run("Should require both a cook and an accepted pairing", func(t *testing.T) {
		visible := VisibleEvents(events, collaborations)
		assert.Len(t, visible, 1)
		assert.Equal(t, uint(1), visible[0].ID)
	})

	t.Run("Should drop an event when its pairing is declined", func(t *testing.T) {
		toggled := []models.CollaborationRequest{
			{FromCookID: cook1, ToHostID: 10, Status: types.COLLABORATION_DECLINED},
		}
		assert.Empty(t, VisibleEvents(events, toggled))
	})

	t.Run("Should handle empty inputs", func(t *testing.T) {
		assert.Empty(t, VisibleEvents(nil, collaborations))
		assert.Empty(t, VisibleEvents(events, nil))
	})
}
