package mq

import (
	"encoding/json"
	"fmt"

	"github.com/campusops/roombook/internal/rooms"
)

// Dispatch runs one decoded command against the registry and builds
// the response envelope. Broker plumbing (ack, reply-to) stays in the
// worker; everything here is broker-independent.
func Dispatch(reg *rooms.Registry, env CommandEnvelope) Response {
	switch env.Type {
	case CommandAddRoom:
		return handleAddRoom(reg, env.Payload)
	case CommandRemoveRoom:
		return handleRemoveRoom(reg, env.Payload)
	case CommandGetRoom:
		return handleGetRoom(reg, env.Payload)
	case CommandFilterRooms:
		return handleFilterRooms(reg, env.Payload)
	case CommandBookRoom:
		return handleBookRoom(reg, env.Payload)
	case CommandCheckAvailability:
		return handleCheckAvailability(reg, env.Payload)
	case CommandAvailableRooms:
		return handleAvailableRooms(reg, env.Payload)
	default:
		return errorResponse(fmt.Sprintf("unknown command type: %s", env.Type))
	}
}

func errorResponse(message string) Response {
	return Response{
		OK:    false,
		Error: message,
		Type:  "Error",
	}
}

func okResponse(respType string, payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorResponse("failed to marshal response payload: " + err.Error())
	}
	return Response{
		OK:      true,
		Type:    respType,
		Payload: body,
	}
}

func codeResponse(respType string, code rooms.Code) Response {
	return okResponse(respType, CodeResponsePayload{Code: code.String()})
}

func roomToInfo(r *rooms.Room) RoomInfo {
	return RoomInfo{
		Building:   r.Building().String(),
		RoomNumber: r.Number(),
		Capacity:   r.Capacity(),
		Projector:  r.HasProjector(),
		Internet:   r.HasInternet(),
	}
}

func roomsToInfos(list []*rooms.Room) []RoomInfo {
	out := make([]RoomInfo, 0, len(list))
	for _, r := range list {
		out = append(out, roomToInfo(r))
	}
	return out
}

func filterFromPayload(p FilterPayload) (rooms.Filter, error) {
	f := rooms.Filter{
		MinCapacity: p.MinCapacity,
		Projector:   p.Projector,
		Internet:    p.Internet,
	}
	if p.Building != nil {
		b, err := rooms.ParseBuilding(*p.Building)
		if err != nil {
			return rooms.Filter{}, err
		}
		f.Building = &b
	}
	return f, nil
}

func handleAddRoom(reg *rooms.Registry, payload json.RawMessage) Response {
	var req AddRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	b, err := rooms.ParseBuilding(req.Room.Building)
	if err != nil {
		return errorResponse(err.Error())
	}

	room := rooms.NewRoom(b, req.Room.RoomNumber, req.Room.Capacity, req.Room.Projector, req.Room.Internet)
	return codeResponse("AddRoomResponse", reg.AddRoom(room))
}

func handleRemoveRoom(reg *rooms.Registry, payload json.RawMessage) Response {
	var req RemoveRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	b, err := rooms.ParseBuilding(req.Building)
	if err != nil {
		return errorResponse(err.Error())
	}

	return codeResponse("RemoveRoomResponse", reg.RemoveRoom(b, req.RoomNumber))
}

func handleGetRoom(reg *rooms.Registry, payload json.RawMessage) Response {
	var req GetRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	b, err := rooms.ParseBuilding(req.Building)
	if err != nil {
		return errorResponse(err.Error())
	}

	resp := GetRoomResponsePayload{}
	if room, found := reg.GetRoom(b, req.RoomNumber); found {
		info := roomToInfo(room)
		resp.Found = true
		resp.Room = &info
	}
	return okResponse("GetRoomResponse", resp)
}

func handleFilterRooms(reg *rooms.Registry, payload json.RawMessage) Response {
	var req FilterRoomsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	f, err := filterFromPayload(req.Filter)
	if err != nil {
		return errorResponse(err.Error())
	}

	return okResponse("FilterRoomsResponse", RoomListResponsePayload{
		Rooms: roomsToInfos(reg.FilterRooms(f)),
	})
}

func handleBookRoom(reg *rooms.Registry, payload json.RawMessage) Response {
	var req BookRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	b, err := rooms.ParseBuilding(req.Building)
	if err != nil {
		return errorResponse(err.Error())
	}

	code := reg.BookRoom(b, req.RoomNumber, req.Hour, req.MinCapacity, req.Projector, req.Internet)
	return codeResponse("BookRoomResponse", code)
}

func handleCheckAvailability(reg *rooms.Registry, payload json.RawMessage) Response {
	var req CheckAvailabilityPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	b, err := rooms.ParseBuilding(req.Building)
	if err != nil {
		return errorResponse(err.Error())
	}

	return codeResponse("CheckAvailabilityResponse", reg.IsAvailable(b, req.RoomNumber, req.Hour))
}

func handleAvailableRooms(reg *rooms.Registry, payload json.RawMessage) Response {
	var req AvailableRoomsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	f, err := filterFromPayload(req.Filter)
	if err != nil {
		return errorResponse(err.Error())
	}

	return okResponse("AvailableRoomsResponse", RoomListResponsePayload{
		Rooms: roomsToInfos(reg.AvailableRoomsByHour(req.Hour, f)),
	})
}
