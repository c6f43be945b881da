package lifecycle

import (
	"testing"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_UpsertLastWriteWins(t *testing.T) {
	b := NewBoard()

	_, inserted := b.Upsert(models.Trip{ID: 1, PickupLocation: "A", Distance: 4})
	assert.True(t, inserted)
	_, inserted = b.Upsert(models.Trip{ID: 2, PickupLocation: "B"})
	assert.True(t, inserted)

	ride, inserted := b.Upsert(models.Trip{ID: 1, PickupLocation: "A2", Distance: 3})
	assert.False(t, inserted)
	assert.Equal(t, "A2", ride.Trip.PickupLocation)

	ride, inserted = b.Upsert(models.Trip{ID: 1, Distance: 1})
	assert.False(t, inserted)
	assert.Empty(t, ride.Trip.PickupLocation, "replacement is wholesale")
	assert.Equal(t, models.FlexibleFloat(1), ride.Trip.Distance)

	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].Trip.ID)
	assert.Equal(t, int64(2), list[1].Trip.ID)
}

func TestBoard_UpsertKeepsPhase(t *testing.T) {
	b := NewBoard()
	ride, _ := b.Upsert(models.Trip{ID: 3})
	_, err := ride.Transition(PhaseApproved)
	require.NoError(t, err)

	ride, _ = b.Upsert(models.Trip{ID: 3, Distance: 2})
	assert.Equal(t, PhaseApproved, ride.Phase)
}

func TestBoard_LateArrivalInserted(t *testing.T) {
	b := NewBoard()
	ride, inserted := b.Upsert(models.Trip{ID: 9, Status: models.TripStatusEnrouteToDrop})
	assert.True(t, inserted)
	assert.Equal(t, PhaseEnrouteToDrop, ride.Phase)
}

func TestBoard_Remove(t *testing.T) {
	b := NewBoard()
	b.Upsert(models.Trip{ID: 1})
	b.Upsert(models.Trip{ID: 2})
	b.Upsert(models.Trip{ID: 3})

	_, ok := b.Remove(2)
	assert.True(t, ok)
	_, ok = b.Remove(2)
	assert.False(t, ok)

	_, ok = b.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, b.Len())

	list := b.List()
	assert.Equal(t, int64(1), list[0].Trip.ID)
	assert.Equal(t, int64(3), list[1].Trip.ID)
}
