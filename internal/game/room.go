// internal/game/room.go
package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
)

// DefaultRoundTimeSec is applied when a room is created without a round time.
const DefaultRoundTimeSec = 60

// RoomSettings are fixed at room creation.
type RoomSettings struct {
	RoundTimeSec int    `json:"roundTime"`
	WordPack     string `json:"wordPack"`
}

// RoomConnection wraps a single member's outbound event channel. The write
// pump owns the draining side; the room enqueues while holding its lock so
// events reach each member in generation order.
type RoomConnection struct {
	PlayerID uuid.UUID
	Cancel   context.CancelFunc
	OutChan  chan RoomEvent
}

// Send enqueues an event without blocking. A member whose channel is full is
// lagging badly; dropping for that member beats stalling the whole room.
func (c *RoomConnection) Send(ev RoomEvent) {
	select {
	case c.OutChan <- ev:
	default:
	}
}

// SendError enqueues a private error event.
func (c *RoomConnection) SendError(message string) {
	c.Send(NewErrorEvent(message))
}

// Room is one isolated game session. Every field below Mu is guarded by it;
// each inbound event mutates the room under the lock for the duration of one
// handling step, and never across an external classifier call.
type Room struct {
	ID        string
	Settings  RoomSettings
	CreatedAt time.Time

	Mu sync.Mutex

	// Players is keyed by connection ID; Order preserves join order and is
	// the population the artist is drawn from.
	Players map[uuid.UUID]*models.Player
	Order   []uuid.UUID

	Connections map[uuid.UUID]*RoomConnection

	// Round is nil while the room is idle.
	Round *Round

	// Strokes is the accepted stroke log for the active round, replayed to
	// late joiners.
	Strokes []models.Stroke

	// Reports accumulates complaints keyed by target; muteIssued marks
	// targets whose current tally already triggered a mute.
	Reports    map[uuid.UUID][]models.Report
	muteIssued map[uuid.UUID]bool

	// roundSeq increments on every round start so stale timers can tell they
	// lost the race.
	roundSeq uint64

	rng *rand.Rand
}

// NewRoom builds an empty room. rng may be nil, in which case a time-seeded
// source is used; tests inject a fixed seed.
func NewRoom(id string, settings RoomSettings, rng *rand.Rand) *Room {
	if settings.RoundTimeSec <= 0 {
		settings.RoundTimeSec = DefaultRoundTimeSec
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Room{
		ID:          id,
		Settings:    settings,
		CreatedAt:   time.Now(),
		Players:     make(map[uuid.UUID]*models.Player),
		Connections: make(map[uuid.UUID]*RoomConnection),
		Reports:     make(map[uuid.UUID][]models.Report),
		muteIssued:  make(map[uuid.UUID]bool),
		rng:         rng,
	}
}

// RoundDuration is the configured round length.
func (r *Room) RoundDuration() time.Duration {
	return time.Duration(r.Settings.RoundTimeSec) * time.Second
}

// HasPlayer reports whether the connection belongs to this room.
func (r *Room) HasPlayer(id uuid.UUID) bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	_, ok := r.Players[id]
	return ok
}

// RoundActive reports whether guessing is currently open.
func (r *Room) RoundActive() bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.Round != nil && r.Round.Phase == PhaseActive
}

// AddPlayer registers a member, announces the updated roster, and replays the
// active round's stroke log so a late joiner can catch up.
func (r *Room) AddPlayer(p *models.Player, conn *RoomConnection) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	r.Players[p.ID] = p
	r.Order = append(r.Order, p.ID)
	if conn != nil {
		r.Connections[p.ID] = conn
	}

	r.broadcastAll(RoomEvent{
		Type:    EventPlayerJoined,
		Payload: map[string]interface{}{"players": r.rosterLocked()},
	})

	if conn != nil {
		for _, s := range r.Strokes {
			conn.Send(RoomEvent{
				Type:    EventNewStroke,
				Payload: map[string]interface{}{"stroke": s},
			})
		}
	}
}

// RemovePlayer drops a member and reports whether the room is now empty. If
// the departing player was the artist, the round is abandoned rather than
// left stuck.
func (r *Room) RemovePlayer(id uuid.UUID) (empty bool) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if _, ok := r.Players[id]; !ok {
		return len(r.Players) == 0
	}

	wasArtist := r.Round != nil && r.Round.ArtistID == id

	delete(r.Players, id)
	delete(r.Connections, id)
	for i, pid := range r.Order {
		if pid == id {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			break
		}
	}

	if wasArtist {
		r.endRoundLocked("artistLeft")
	}

	r.broadcastAll(RoomEvent{
		Type: EventPlayerLeft,
		Payload: map[string]interface{}{
			"playerId": id.String(),
			"players":  r.rosterLocked(),
		},
	})
	return len(r.Players) == 0
}

// RelaySignal forwards an opaque signaling payload to a single member. The
// payload is never interpreted.
func (r *Room) RelaySignal(from, target uuid.UUID, data interface{}) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if _, ok := r.Players[target]; !ok {
		return ErrPlayerNotFound
	}
	r.sendTo(target, RoomEvent{
		Type: EventSignal,
		Payload: map[string]interface{}{
			"from": from.String(),
			"data": data,
		},
	})
	return nil
}

// rosterLocked returns the membership in join order. Callers hold Mu.
func (r *Room) rosterLocked() []*models.Player {
	roster := make([]*models.Player, 0, len(r.Order))
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok {
			roster = append(roster, p)
		}
	}
	return roster
}

// scoreboardLocked maps player IDs to scores. Callers hold Mu.
func (r *Room) scoreboardLocked() map[string]int {
	scores := make(map[string]int, len(r.Players))
	for id, p := range r.Players {
		scores[id.String()] = p.Score
	}
	return scores
}

// broadcastAll enqueues an event for every connected member. Callers hold Mu.
func (r *Room) broadcastAll(ev RoomEvent) {
	for _, conn := range r.Connections {
		conn.Send(ev)
	}
}

// broadcastExcept enqueues an event for everyone but the named member.
// Callers hold Mu.
func (r *Room) broadcastExcept(skip uuid.UUID, ev RoomEvent) {
	for id, conn := range r.Connections {
		if id == skip {
			continue
		}
		conn.Send(ev)
	}
}

// sendTo enqueues a private event for one member, if connected. Callers
// hold Mu.
func (r *Room) sendTo(id uuid.UUID, ev RoomEvent) {
	if conn, ok := r.Connections[id]; ok {
		conn.Send(ev)
	}
}
