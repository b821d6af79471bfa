// internal/game/room_store_test.go
package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePlayer() (*models.Player, *RoomConnection) {
	id := uuid.New()
	return &models.Player{ID: id, Name: "p"},
		&RoomConnection{PlayerID: id, OutChan: make(chan RoomEvent, 64)}
}

func TestCreateRoomDuplicateID(t *testing.T) {
	s := NewRoomStore()
	p1, c1 := storePlayer()
	_, err := s.CreateRoom("ABCD", RoomSettings{RoundTimeSec: 60}, p1, c1)
	require.NoError(t, err)

	p2, c2 := storePlayer()
	_, err = s.CreateRoom("ABCD", RoomSettings{RoundTimeSec: 60}, p2, c2)
	assert.ErrorIs(t, err, ErrRoomExists)
}

func TestCreateRoomGeneratesID(t *testing.T) {
	s := NewRoomStore()
	p, c := storePlayer()
	room, err := s.CreateRoom("", RoomSettings{}, p, c)
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, DefaultRoundTimeSec, room.Settings.RoundTimeSec)
}

func TestJoinUnknownRoom(t *testing.T) {
	s := NewRoomStore()
	p, c := storePlayer()
	_, err := s.JoinRoom("NOPE", p, c)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestLeaveDeletesEmptyRoom(t *testing.T) {
	s := NewRoomStore()
	p, c := storePlayer()
	_, err := s.CreateRoom("ABCD", RoomSettings{}, p, c)
	require.NoError(t, err)
	require.Equal(t, 1, s.Count())

	s.Leave(p.ID)
	assert.Zero(t, s.Count())

	// The deleted room is gone for good.
	p2, c2 := storePlayer()
	_, err = s.JoinRoom("ABCD", p2, c2)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestLeaveKeepsPopulatedRoom(t *testing.T) {
	s := NewRoomStore()
	p1, c1 := storePlayer()
	room, err := s.CreateRoom("ABCD", RoomSettings{}, p1, c1)
	require.NoError(t, err)

	p2, c2 := storePlayer()
	_, err = s.JoinRoom("ABCD", p2, c2)
	require.NoError(t, err)

	s.Leave(p1.ID)
	assert.Equal(t, 1, s.Count())
	assert.True(t, room.HasPlayer(p2.ID))
	assert.False(t, room.HasPlayer(p1.ID))

	_, ok := s.RoomFor(p1.ID)
	assert.False(t, ok, "the connection index must be cleared on leave")

	// Leaving twice is harmless.
	s.Leave(p1.ID)
	assert.Equal(t, 1, s.Count())
}
