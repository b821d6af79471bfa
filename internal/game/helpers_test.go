// internal/game/helpers_test.go
package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
	"github.com/stretchr/testify/require"
)

// newTestRoom builds a room with a fixed random seed and n connected players.
// The returned conns collect every event sent to each player; join-phase
// events are drained so tests start from a clean slate.
func newTestRoom(t *testing.T, n int) (*Room, []uuid.UUID, map[uuid.UUID]*RoomConnection) {
	t.Helper()

	room := NewRoom("ABCD", RoomSettings{RoundTimeSec: 60, WordPack: "basic"},
		rand.New(rand.NewSource(1)))

	ids := make([]uuid.UUID, 0, n)
	conns := make(map[uuid.UUID]*RoomConnection, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		conn := &RoomConnection{PlayerID: id, OutChan: make(chan RoomEvent, 64)}
		room.AddPlayer(&models.Player{ID: id, Name: "player"}, conn)
		ids = append(ids, id)
		conns[id] = conn
	}
	require.Len(t, room.Players, n)

	for _, conn := range conns {
		drainEvents(conn)
	}
	return room, ids, conns
}

// drainEvents empties a connection's queue. Events are enqueued synchronously
// under the room lock, so everything generated so far is already buffered.
func drainEvents(conn *RoomConnection) []RoomEvent {
	var evs []RoomEvent
	for {
		select {
		case ev := <-conn.OutChan:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func eventsOfType(evs []RoomEvent, typ RoomEventType) []RoomEvent {
	var out []RoomEvent
	for _, ev := range evs {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func lastEventOfType(evs []RoomEvent, typ RoomEventType) *RoomEvent {
	matches := eventsOfType(evs, typ)
	if len(matches) == 0 {
		return nil
	}
	return &matches[len(matches)-1]
}

// startActiveRound drives the full Idle -> WordOffered -> Active transition
// and returns the chosen artist and fixed word.
func startActiveRound(t *testing.T, room *Room, conns map[uuid.UUID]*RoomConnection) (uuid.UUID, string) {
	t.Helper()

	require.NoError(t, room.StartRound("basic"))
	artistID := room.Round.ArtistID
	word := room.Round.Options.Medium
	require.NoError(t, room.SelectWord(artistID, word, DifficultyMedium))

	for _, conn := range conns {
		drainEvents(conn)
	}
	return artistID, word
}

// testStroke builds a minimal two-point stroke, optionally carrying a
// detection image.
func testStroke(image string) models.Stroke {
	return models.Stroke{
		Points: []models.StrokePoint{{X: 0.1, Y: 0.2, T: 0}, {X: 0.3, Y: 0.4, T: 16}},
		Color:  "#1a1a1a",
		Width:  4,
		Image:  image,
	}
}

// forceActiveRound installs an Active round directly so tests can control the
// artist and word without going through random selection.
func forceActiveRound(room *Room, artistID uuid.UUID, word string, difficulty Difficulty) {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	room.roundSeq++
	room.Round = &Round{
		ArtistID:        artistID,
		Phase:           PhaseActive,
		Word:            word,
		Difficulty:      difficulty,
		Category:        "General",
		StartedAt:       time.Now(),
		CorrectGuessers: make(map[uuid.UUID]bool),
	}
	if p, ok := room.Players[artistID]; ok {
		p.IsArtist = true
	}
}
