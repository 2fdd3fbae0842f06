package mq

import "encoding/json"

// Command types accepted by the booking queue.
type CommandType string

const (
	CommandAddRoom           CommandType = "AddRoom"
	CommandRemoveRoom        CommandType = "RemoveRoom"
	CommandGetRoom           CommandType = "GetRoom"
	CommandFilterRooms       CommandType = "FilterRooms"
	CommandBookRoom          CommandType = "BookRoom"
	CommandCheckAvailability CommandType = "CheckAvailability"
	CommandAvailableRooms    CommandType = "AvailableRooms"
)

// Generic command envelope.
type CommandEnvelope struct {
	Type    CommandType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RoomInfo is the wire form of a catalogue entry.
type RoomInfo struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Projector  bool   `json:"projector"`
	Internet   bool   `json:"internet"`
}

// Request payloads

type AddRoomPayload struct {
	Room RoomInfo `json:"room"`
}

type RemoveRoomPayload struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
}

type GetRoomPayload struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
}

// FilterPayload carries the optional constraints; a missing field
// means no constraint.
type FilterPayload struct {
	MinCapacity *int    `json:"min_capacity,omitempty"`
	Building    *string `json:"building,omitempty"`
	Projector   *bool   `json:"projector,omitempty"`
	Internet    *bool   `json:"internet,omitempty"`
}

type FilterRoomsPayload struct {
	Filter FilterPayload `json:"filter"`
}

type BookRoomPayload struct {
	Building    string `json:"building"`
	RoomNumber  string `json:"room_number"`
	Hour        int    `json:"hour"`
	MinCapacity int    `json:"min_capacity"`
	Projector   bool   `json:"projector"`
	Internet    bool   `json:"internet"`
}

type CheckAvailabilityPayload struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
	Hour       int    `json:"hour"`
}

type AvailableRoomsPayload struct {
	Hour   int           `json:"hour"`
	Filter FilterPayload `json:"filter"`
}

// Response payloads

type CodeResponsePayload struct {
	Code string `json:"code"`
}

type GetRoomResponsePayload struct {
	Found bool      `json:"found"`
	Room  *RoomInfo `json:"room,omitempty"`
}

type RoomListResponsePayload struct {
	Rooms []RoomInfo `json:"rooms"`
}

// Generic response envelope.
type Response struct {
	OK      bool            `json:"ok"`
	Error   string          `json:"error,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
