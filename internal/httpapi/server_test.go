package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusops/roombook/internal/rooms"
)

func testServer(t *testing.T) (*Server, *rooms.Registry) {
	t.Helper()
	reg := rooms.NewRegistry()
	return NewServer(reg, zap.NewNop()), reg
}

func doJSON(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestAddRoom(t *testing.T) {
	s, reg := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/rooms",
		`{"building":"LTC","room_number":"5101","capacity":100,"projector":true,"internet":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body codeBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "OK", body.Code)

	_, found := reg.GetRoom(rooms.LTC, "5101")
	assert.True(t, found)
}

func TestAddRoom_ValidationStatuses(t *testing.T) {
	s, _ := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/rooms",
		`{"building":"LTC","room_number":"4101","capacity":100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body codeBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "INVALID_ROOM_NUMBER", body.Code)

	rec = doJSON(t, s, http.MethodPost, "/rooms",
		`{"building":"LTC","room_number":"5101","capacity":75}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "INVALID_CAPACITY", body.Code)

	// Duplicate maps to conflict.
	ok := doJSON(t, s, http.MethodPost, "/rooms",
		`{"building":"LTC","room_number":"5101","capacity":100}`)
	require.Equal(t, http.StatusCreated, ok.Code)
	rec = doJSON(t, s, http.MethodPost, "/rooms",
		`{"building":"LTC","room_number":"5101","capacity":200}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "DUPLICATE_ROOM", body.Code)

	rec = doJSON(t, s, http.MethodPost, "/rooms", `{"building":"FD9","room_number":"9101"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndRemoveRoom(t *testing.T) {
	s, reg := testServer(t)
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.NAB, "6101", 200, false, true)))

	rec := doJSON(t, s, http.MethodGet, "/rooms/NAB/6101", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var body roomBody
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Room)
	assert.Equal(t, 200, body.Room.Capacity)
	assert.False(t, body.Room.Projector)

	rec = doJSON(t, s, http.MethodGet, "/rooms/NAB/6109", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/rooms/NAB/6101", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/rooms/NAB/6101", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFilterRooms_QueryParams(t *testing.T) {
	s, reg := testServer(t)
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.LTC, "5101", 100, true, true)))
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.NAB, "6101", 200, false, true)))
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.FD1, "1101", 300, true, false)))

	rec := doJSON(t, s, http.MethodGet, "/rooms?min_capacity=200", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var body roomListBody
	decodeBody(t, rec, &body)
	require.Len(t, body.Rooms, 2)
	assert.Equal(t, "6101", body.Rooms[0].RoomNumber)
	assert.Equal(t, "1101", body.Rooms[1].RoomNumber)

	rec = doJSON(t, s, http.MethodGet, "/rooms?projector=true&internet=true", "")
	body = roomListBody{}
	decodeBody(t, rec, &body)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "5101", body.Rooms[0].RoomNumber)

	rec = doJSON(t, s, http.MethodGet, "/rooms?building=FD1", "")
	body = roomListBody{}
	decodeBody(t, rec, &body)
	require.Len(t, body.Rooms, 1)

	rec = doJSON(t, s, http.MethodGet, "/rooms?min_capacity=lots", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookRoomAndAvailability(t *testing.T) {
	s, reg := testServer(t)
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.FD1, "1101", 150, true, true)))

	rec := doJSON(t, s, http.MethodPost, "/rooms/FD1/1101/bookings",
		`{"hour":3,"min_capacity":100,"projector":true,"internet":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/rooms/FD1/1101/bookings", `{"hour":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var body codeBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "ALREADY_BOOKED", body.Code)

	rec = doJSON(t, s, http.MethodGet, "/rooms/FD1/1101/availability?hour=3", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/rooms/FD1/1101/availability?hour=4", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/rooms/FD1/1101/availability?hour=0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "INVALID_HOUR", body.Code)
}

func TestAvailableRooms(t *testing.T) {
	s, reg := testServer(t)
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.LTC, "5101", 100, true, true)))
	require.Equal(t, rooms.OK, reg.AddRoom(rooms.NewRoom(rooms.NAB, "6101", 200, false, true)))
	require.Equal(t, rooms.OK, reg.BookRoom(rooms.LTC, "5101", 2, 0, false, false))

	rec := doJSON(t, s, http.MethodGet, "/availability?hour=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var body roomListBody
	decodeBody(t, rec, &body)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "6101", body.Rooms[0].RoomNumber)

	// Invalid hour is an empty list, matching the registry contract.
	rec = doJSON(t, s, http.MethodGet, "/availability?hour=0", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body = roomListBody{}
	decodeBody(t, rec, &body)
	assert.Empty(t, body.Rooms)

	rec = doJSON(t, s, http.MethodGet, "/availability?hour=two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
