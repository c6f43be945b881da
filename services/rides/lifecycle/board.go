package lifecycle

import "github.com/piresc/ridebook/internal/pkg/models"

// Board is the list of active trips of one view, in arrival order.
// It is not safe for concurrent use; controllers hold their own lock.
type Board struct {
	rides map[int64]*Ride
	order []int64
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{rides: make(map[int64]*Ride)}
}

// Upsert replaces a tracked trip wholesale (last write wins) or inserts an unknown one
func (b *Board) Upsert(trip models.Trip) (*Ride, bool) {
	if ride, ok := b.rides[trip.ID]; ok {
		ride.Replace(trip)
		return ride, false
	}
	ride := NewRide(trip)
	b.rides[trip.ID] = ride
	b.order = append(b.order, trip.ID)
	return ride, true
}

// Get returns the tracked trip
func (b *Board) Get(id int64) (*Ride, bool) {
	ride, ok := b.rides[id]
	return ride, ok
}

// Remove stops tracking a trip
func (b *Board) Remove(id int64) (*Ride, bool) {
	ride, ok := b.rides[id]
	if !ok {
		return nil, false
	}
	delete(b.rides, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return ride, true
}

// List returns copies of the tracked trips in arrival order
func (b *Board) List() []Ride {
	out := make([]Ride, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.rides[id])
	}
	return out
}

// Len returns the number of tracked trips
func (b *Board) Len() int {
	return len(b.order)
}
