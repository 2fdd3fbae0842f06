package rooms

import "sync"

const (
	hourMin = 1
	hourMax = 10
)

const (
	capacityMin  = 50
	capacityMax  = 400
	capacityStep = 50
)

// Registry owns the room catalogue and the per-room booking calendar.
// Rooms carry no booking state themselves; every booked hour lives in
// bookings, keyed by room identity.
//
// One coarse lock guards catalogue and calendar together so that
// uniqueness and at-most-one-booking-per-slot hold under concurrent
// drivers.
type Registry struct {
	mu       sync.RWMutex
	rooms    []*Room                 // insertion order, unique by identity
	bookings map[string]map[int]bool // room key -> booked hours (1..10)
}

func NewRegistry() *Registry {
	return &Registry{
		bookings: make(map[string]map[int]bool),
	}
}

// Filter is the optional constraint set for FilterRooms and
// AvailableRoomsByHour. A nil field means no constraint.
type Filter struct {
	MinCapacity *int
	Building    *Building
	Projector   *bool
	Internet    *bool
}

// AddRoom validates and appends a room to the catalogue, creating its
// empty booking calendar. Checks run in a fixed order and the first
// failure wins; a rejected room leaves the registry unchanged.
func (g *Registry) AddRoom(room *Room) Code {
	if room == nil {
		return RoomNull
	}
	if !validRoomNumber(room.Building(), room.Number()) {
		return InvalidRoomNumber
	}
	if !validCapacity(room.Capacity()) {
		return InvalidCapacity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.findLocked(room.Building(), room.Number()) != nil {
		return DuplicateRoom
	}

	g.rooms = append(g.rooms, room)
	if _, ok := g.bookings[room.Key()]; !ok {
		g.bookings[room.Key()] = make(map[int]bool)
	}
	return OK
}

// RemoveRoom drops the room and its whole calendar in one step.
func (g *Registry) RemoveRoom(building Building, number string) Code {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, r := range g.rooms {
		if r.Building() == building && r.Number() == number {
			g.rooms = append(g.rooms[:i], g.rooms[i+1:]...)
			delete(g.bookings, roomKey(building, number))
			return OK
		}
	}
	return RoomNotFound
}

// GetRoom returns the registered room with the given identity, or
// false when no such room exists.
func (g *Registry) GetRoom(building Building, number string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := g.findLocked(building, number)
	return r, r != nil
}

// Rooms returns the catalogue in insertion order.
func (g *Registry) Rooms() []*Room {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// FilterRooms returns the rooms satisfying every given constraint, in
// catalogue insertion order.
func (g *Registry) FilterRooms(f Filter) []*Room {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.filterLocked(f)
}

func (g *Registry) filterLocked(f Filter) []*Room {
	matches := func(r *Room) bool {
		return (f.MinCapacity == nil || r.Capacity() >= *f.MinCapacity) &&
			(f.Building == nil || r.Building() == *f.Building) &&
			(f.Projector == nil || !*f.Projector || r.HasProjector()) &&
			(f.Internet == nil || !*f.Internet || r.HasInternet())
	}

	out := []*Room{}
	for _, r := range g.rooms {
		if matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// BookRoom reserves one hour slot. Validation order: hour, existence,
// capacity, projector, internet, slot already taken. Booking is
// monotonic; a taken slot is only freed by removing the room.
func (g *Registry) BookRoom(building Building, number string, hour, minRequiredCapacity int, requireProjector, requireInternet bool) Code {
	if hour < hourMin || hour > hourMax {
		return InvalidHour
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	room := g.findLocked(building, number)
	if room == nil {
		return RoomNotFound
	}
	if room.Capacity() < minRequiredCapacity {
		return InsufficientCapacity
	}
	if requireProjector && !room.HasProjector() {
		return ProjectorNotAvailable
	}
	if requireInternet && !room.HasInternet() {
		return InternetNotAvailable
	}

	k := roomKey(building, number)
	booked, ok := g.bookings[k]
	if !ok {
		booked = make(map[int]bool)
		g.bookings[k] = booked
	}
	if booked[hour] {
		return AlreadyBooked
	}
	booked[hour] = true
	return OK
}

// IsAvailable reports whether the hour slot is free. Pure read.
func (g *Registry) IsAvailable(building Building, number string, hour int) Code {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isAvailableLocked(building, number, hour)
}

func (g *Registry) isAvailableLocked(building Building, number string, hour int) Code {
	if hour < hourMin || hour > hourMax {
		return InvalidHour
	}
	if g.findLocked(building, number) == nil {
		return RoomNotFound
	}
	if g.bookings[roomKey(building, number)][hour] {
		return AlreadyBooked
	}
	return OK
}

// AvailableRoomsByHour runs the filter and keeps only rooms whose slot
// for the given hour is free. An out-of-range hour yields an empty
// list before any filtering. Order follows the catalogue.
func (g *Registry) AvailableRoomsByHour(hour int, f Filter) []*Room {
	if hour < hourMin || hour > hourMax {
		return []*Room{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	available := []*Room{}
	for _, r := range g.filterLocked(f) {
		if g.isAvailableLocked(r.Building(), r.Number(), hour) == OK {
			available = append(available, r)
		}
	}
	return available
}

func (g *Registry) findLocked(building Building, number string) *Room {
	for _, r := range g.rooms {
		if r.Building() == building && r.Number() == number {
			return r
		}
	}
	return nil
}

func validCapacity(capacity int) bool {
	return capacity >= capacityMin && capacity <= capacityMax && capacity%capacityStep == 0
}

func validRoomNumber(b Building, number string) bool {
	if !b.valid() || len(number) != 4 {
		return false
	}
	return number[:2] == b.RoomNumberPrefix()
}
