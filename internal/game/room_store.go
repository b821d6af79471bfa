// internal/game/room_store.go
package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
)

// RoomStore owns every live room plus the connection-to-room index. It is the
// single source of truth for room membership; all lookups are O(1).
type RoomStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
	conns map[uuid.UUID]string
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*Room),
		conns: make(map[uuid.UUID]string),
	}
}

// CreateRoom makes a new room with the creator as its first member. An empty
// id asks the server to generate one. Returns ErrRoomExists if the id is
// already taken.
func (s *RoomStore) CreateRoom(id string, settings RoomSettings, creator *models.Player, conn *RoomConnection) (*Room, error) {
	s.mu.Lock()
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := s.rooms[id]; exists {
		s.mu.Unlock()
		return nil, ErrRoomExists
	}
	room := NewRoom(id, settings, nil)
	s.rooms[id] = room
	s.conns[creator.ID] = id
	s.mu.Unlock()

	room.AddPlayer(creator, conn)
	return room, nil
}

// JoinRoom adds a player to an existing room and indexes the connection.
func (s *RoomStore) JoinRoom(roomID string, p *models.Player, conn *RoomConnection) (*Room, error) {
	s.mu.Lock()
	room, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	s.conns[p.ID] = roomID
	s.mu.Unlock()

	room.AddPlayer(p, conn)
	return room, nil
}

// GetRoom looks up a room by id.
func (s *RoomStore) GetRoom(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	return room, ok
}

// RoomFor returns the room the connection currently belongs to, if any.
func (s *RoomStore) RoomFor(connID uuid.UUID) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roomID, ok := s.conns[connID]
	if !ok {
		return nil, false
	}
	room, ok := s.rooms[roomID]
	return room, ok
}

// Leave removes the connection from whichever room holds it, de-indexes it,
// and deletes the room once its last member is gone so no orphaned state
// survives.
func (s *RoomStore) Leave(connID uuid.UUID) {
	s.mu.Lock()
	roomID, ok := s.conns[connID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.conns, connID)
	room := s.rooms[roomID]
	s.mu.Unlock()

	if room == nil {
		return
	}
	if empty := room.RemovePlayer(connID); empty {
		s.mu.Lock()
		delete(s.rooms, roomID)
		s.mu.Unlock()
	}
}

// Count returns the number of live rooms.
func (s *RoomStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
