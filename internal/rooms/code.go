package rooms

// Code is the outcome of a registry operation. Operations report
// failures as values from this closed set instead of errors; a
// rejected call leaves the registry untouched.
type Code int

const (
	OK Code = iota
	RoomNull
	InvalidRoomNumber
	InvalidCapacity
	DuplicateRoom
	RoomNotFound
	InvalidHour
	AlreadyBooked
	InsufficientCapacity
	ProjectorNotAvailable
	InternetNotAvailable
	// NotBooked is part of the boundary contract but no operation
	// returns it: there is no cancel-booking operation in this core.
	NotBooked
)

var codeNames = map[Code]string{
	OK:                    "OK",
	RoomNull:              "ROOM_NULL",
	InvalidRoomNumber:     "INVALID_ROOM_NUMBER",
	InvalidCapacity:       "INVALID_CAPACITY",
	DuplicateRoom:         "DUPLICATE_ROOM",
	RoomNotFound:          "ROOM_NOT_FOUND",
	InvalidHour:           "INVALID_HOUR",
	AlreadyBooked:         "ALREADY_BOOKED",
	InsufficientCapacity:  "INSUFFICIENT_CAPACITY",
	ProjectorNotAvailable: "PROJECTOR_NOT_AVAILABLE",
	InternetNotAvailable:  "INTERNET_NOT_AVAILABLE",
	NotBooked:             "NOT_BOOKED",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
