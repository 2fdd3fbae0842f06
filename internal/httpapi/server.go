// Package httpapi exposes the room registry as a JSON HTTP service.
// Every response carries the registry's outcome code verbatim; the
// HTTP status is derived from it so plain HTTP clients can branch
// without parsing the body.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/campusops/roombook/internal/rooms"
)

type Server struct {
	registry *rooms.Registry
	log      *zap.Logger
	router   *mux.Router
}

func NewServer(registry *rooms.Registry, log *zap.Logger) *Server {
	s := &Server{
		registry: registry,
		log:      log,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.HandleFunc("/rooms", s.handleAddRoom).Methods(http.MethodPost)
	s.router.HandleFunc("/rooms", s.handleFilterRooms).Methods(http.MethodGet)
	s.router.HandleFunc("/rooms/{building}/{number}", s.handleGetRoom).Methods(http.MethodGet)
	s.router.HandleFunc("/rooms/{building}/{number}", s.handleRemoveRoom).Methods(http.MethodDelete)
	s.router.HandleFunc("/rooms/{building}/{number}/bookings", s.handleBookRoom).Methods(http.MethodPost)
	s.router.HandleFunc("/rooms/{building}/{number}/availability", s.handleIsAvailable).Methods(http.MethodGet)
	s.router.HandleFunc("/availability", s.handleAvailableRooms).Methods(http.MethodGet)
}

// Wire shapes

type roomPayload struct {
	Building   string `json:"building"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Projector  bool   `json:"projector"`
	Internet   bool   `json:"internet"`
}

type bookPayload struct {
	Hour        int  `json:"hour"`
	MinCapacity int  `json:"min_capacity"`
	Projector   bool `json:"projector"`
	Internet    bool `json:"internet"`
}

type codeBody struct {
	Code string `json:"code"`
}

type roomBody struct {
	Code string       `json:"code"`
	Room *roomPayload `json:"room,omitempty"`
}

type roomListBody struct {
	Rooms []roomPayload `json:"rooms"`
}

type errorBody struct {
	Error string `json:"error"`
}

func roomToPayload(r *rooms.Room) roomPayload {
	return roomPayload{
		Building:   r.Building().String(),
		RoomNumber: r.Number(),
		Capacity:   r.Capacity(),
		Projector:  r.HasProjector(),
		Internet:   r.HasInternet(),
	}
}

func roomsToPayloads(list []*rooms.Room) []roomPayload {
	out := make([]roomPayload, 0, len(list))
	for _, r := range list {
		out = append(out, roomToPayload(r))
	}
	return out
}

// statusFromCode maps registry outcomes onto HTTP statuses.
func statusFromCode(code rooms.Code, okStatus int) int {
	switch code {
	case rooms.OK:
		return okStatus
	case rooms.RoomNotFound:
		return http.StatusNotFound
	case rooms.DuplicateRoom, rooms.AlreadyBooked:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusBadRequest, errorBody{Error: message})
}

// Handlers

func (s *Server) handleAddRoom(w http.ResponseWriter, r *http.Request) {
	var req roomPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	b, err := rooms.ParseBuilding(req.Building)
	if err != nil {
		s.writeBadRequest(w, err.Error())
		return
	}

	code := s.registry.AddRoom(rooms.NewRoom(b, req.RoomNumber, req.Capacity, req.Projector, req.Internet))
	s.log.Info("add room",
		zap.String("building", req.Building),
		zap.String("room", req.RoomNumber),
		zap.Stringer("code", code))
	s.writeJSON(w, statusFromCode(code, http.StatusCreated), codeBody{Code: code.String()})
}

func (s *Server) handleRemoveRoom(w http.ResponseWriter, r *http.Request) {
	b, number, ok := s.identityVars(w, r)
	if !ok {
		return
	}

	code := s.registry.RemoveRoom(b, number)
	s.log.Info("remove room",
		zap.Stringer("building", b),
		zap.String("room", number),
		zap.Stringer("code", code))
	s.writeJSON(w, statusFromCode(code, http.StatusOK), codeBody{Code: code.String()})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	b, number, ok := s.identityVars(w, r)
	if !ok {
		return
	}

	room, found := s.registry.GetRoom(b, number)
	if !found {
		s.writeJSON(w, http.StatusNotFound, roomBody{Code: rooms.RoomNotFound.String()})
		return
	}

	payload := roomToPayload(room)
	s.writeJSON(w, http.StatusOK, roomBody{Code: rooms.OK.String(), Room: &payload})
}

func (s *Server) handleFilterRooms(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		s.writeBadRequest(w, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, roomListBody{Rooms: roomsToPayloads(s.registry.FilterRooms(f))})
}

func (s *Server) handleBookRoom(w http.ResponseWriter, r *http.Request) {
	b, number, ok := s.identityVars(w, r)
	if !ok {
		return
	}

	var req bookPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	code := s.registry.BookRoom(b, number, req.Hour, req.MinCapacity, req.Projector, req.Internet)
	s.log.Info("book room",
		zap.Stringer("building", b),
		zap.String("room", number),
		zap.Int("hour", req.Hour),
		zap.Stringer("code", code))
	s.writeJSON(w, statusFromCode(code, http.StatusCreated), codeBody{Code: code.String()})
}

func (s *Server) handleIsAvailable(w http.ResponseWriter, r *http.Request) {
	b, number, ok := s.identityVars(w, r)
	if !ok {
		return
	}

	hour, err := strconv.Atoi(r.URL.Query().Get("hour"))
	if err != nil {
		s.writeBadRequest(w, "hour must be an integer")
		return
	}

	code := s.registry.IsAvailable(b, number, hour)
	s.writeJSON(w, statusFromCode(code, http.StatusOK), codeBody{Code: code.String()})
}

func (s *Server) handleAvailableRooms(w http.ResponseWriter, r *http.Request) {
	hour, err := strconv.Atoi(r.URL.Query().Get("hour"))
	if err != nil {
		s.writeBadRequest(w, "hour must be an integer")
		return
	}

	f, err := filterFromQuery(r)
	if err != nil {
		s.writeBadRequest(w, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, roomListBody{Rooms: roomsToPayloads(s.registry.AvailableRoomsByHour(hour, f))})
}

// Helpers

func (s *Server) identityVars(w http.ResponseWriter, r *http.Request) (rooms.Building, string, bool) {
	vars := mux.Vars(r)
	b, err := rooms.ParseBuilding(vars["building"])
	if err != nil {
		s.writeBadRequest(w, err.Error())
		return 0, "", false
	}
	return b, vars["number"], true
}

func filterFromQuery(r *http.Request) (rooms.Filter, error) {
	var f rooms.Filter
	q := r.URL.Query()

	if v := q.Get("min_capacity"); v != "" {
		minCap, err := strconv.Atoi(v)
		if err != nil {
			return rooms.Filter{}, errBadParam("min_capacity")
		}
		f.MinCapacity = &minCap
	}
	if v := q.Get("building"); v != "" {
		b, err := rooms.ParseBuilding(v)
		if err != nil {
			return rooms.Filter{}, err
		}
		f.Building = &b
	}
	if v := q.Get("projector"); v != "" {
		projector, err := strconv.ParseBool(v)
		if err != nil {
			return rooms.Filter{}, errBadParam("projector")
		}
		f.Projector = &projector
	}
	if v := q.Get("internet"); v != "" {
		internet, err := strconv.ParseBool(v)
		if err != nil {
			return rooms.Filter{}, errBadParam("internet")
		}
		f.Internet = &internet
	}
	return f, nil
}

func errBadParam(name string) error {
	return fmt.Errorf("invalid query parameter: %s", name)
}
