package rooms

import (
	"fmt"
	"strings"
)

// Room is a catalogue entry. Identity is the (building, roomNumber)
// pair and is fixed at construction; capacity and the amenity flags
// may be changed in place by whoever holds the room.
type Room struct {
	building  Building
	number    string // exactly 4 characters, e.g. "5101"
	capacity  int    // multiple of 50 in [50, 400]
	projector bool
	internet  bool
}

func NewRoom(building Building, number string, capacity int, projector, internet bool) *Room {
	return &Room{
		building:  building,
		number:    number,
		capacity:  capacity,
		projector: projector,
		internet:  internet,
	}
}

func (r *Room) Building() Building { return r.building }
func (r *Room) Number() string     { return r.number }
func (r *Room) Capacity() int      { return r.capacity }
func (r *Room) HasProjector() bool { return r.projector }
func (r *Room) HasInternet() bool  { return r.internet }

func (r *Room) SetCapacity(capacity int)  { r.capacity = capacity }
func (r *Room) SetProjector(present bool) { r.projector = present }
func (r *Room) SetInternet(present bool)  { r.internet = present }

// Key is the identity string used to index booking calendars. It is
// derived from building and number only, consistent with Equal.
func (r *Room) Key() string {
	return roomKey(r.building, r.number)
}

func roomKey(b Building, number string) string {
	return b.String() + "#" + number
}

// Equal reports whether other names the same room. Capacity and
// amenities do not participate in identity.
func (r *Room) Equal(other *Room) bool {
	if r == other {
		return true
	}
	if other == nil {
		return false
	}
	return r.building == other.building && r.number == other.number
}

// Compare orders rooms by capacity ascending, ties broken by room
// number. A nil comparand sorts before any real room.
func (r *Room) Compare(other *Room) int {
	if other == nil {
		return 1
	}
	if r.capacity != other.capacity {
		if r.capacity < other.capacity {
			return -1
		}
		return 1
	}
	return strings.Compare(r.number, other.number)
}

// ByBuildingThenRoom orders by building display name, ties broken by
// room number. Nil sorts first on the left operand and last on the
// right, so it can be handed straight to slices.SortFunc.
func ByBuildingThenRoom(a, b *Room) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if byBuilding := strings.Compare(a.building.String(), b.building.String()); byBuilding != 0 {
		return byBuilding
	}
	return strings.Compare(a.number, b.number)
}

func (r *Room) String() string {
	return fmt.Sprintf("Room{building=%s, number=%s, capacity=%d, projector=%t, internet=%t}",
		r.building, r.number, r.capacity, r.projector, r.internet)
}
