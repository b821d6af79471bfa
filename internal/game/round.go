// internal/game/round.go
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoundPhase tracks where a round is in its lifecycle. A nil Room.Round is
// the idle state.
type RoundPhase int

const (
	PhaseWordOffered RoundPhase = iota // options sent to the artist, word not fixed
	PhaseActive                        // word fixed, guessing open
)

// Round is one word-guessing cycle belonging to a single room. The secret
// word is never sent to non-artists; only its length, difficulty, and
// category go out on roundStarted.
type Round struct {
	ArtistID   uuid.UUID
	Phase      RoundPhase
	Options    WordOptions
	Word       string
	Difficulty Difficulty
	Category   string
	StartedAt  time.Time

	HintsUsed  int
	Violations int

	// penaltySent latches once the violation count crosses the threshold so
	// the penalty fires exactly once per round.
	penaltySent bool

	// CorrectGuessers prevents double-scoring within the round.
	CorrectGuessers map[uuid.UUID]bool

	timer *time.Timer
}

// StartRound picks an artist uniformly at random from the current members,
// draws one word per tier from the named pack, and offers the options
// privately to the artist. Repeats of the previous artist are allowed.
// Transitions Idle -> WordOffered.
func (r *Room) StartRound(packName string) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Round != nil {
		return ErrInvalidTransition
	}
	if len(r.Order) == 0 {
		return ErrEmptyRoom
	}

	artistID := r.Order[r.rng.Intn(len(r.Order))]
	pack := LookupPack(packName)
	opts := pack.PickOptions(r.rng)

	r.roundSeq++
	r.Round = &Round{
		ArtistID:        artistID,
		Phase:           PhaseWordOffered,
		Options:         opts,
		Category:        pack.Category,
		CorrectGuessers: make(map[uuid.UUID]bool),
	}
	if artist, ok := r.Players[artistID]; ok {
		artist.IsArtist = true
	}

	r.sendTo(artistID, RoomEvent{
		Type: EventWordOptions,
		Payload: map[string]interface{}{
			"easy":   opts.Easy,
			"medium": opts.Medium,
			"hard":   opts.Hard,
		},
	})
	return nil
}

// SelectWord fixes the round's word and opens guessing. Only the chosen
// artist may select, only while the offer is outstanding, and only a word
// that was actually offered for the named tier. Transitions
// WordOffered -> Active and arms the round timer.
func (r *Room) SelectWord(connID uuid.UUID, word string, difficulty Difficulty) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	rd := r.Round
	if rd == nil || rd.Phase != PhaseWordOffered {
		return ErrInvalidTransition
	}
	if rd.ArtistID != connID {
		return ErrNotArtist
	}
	if !difficulty.Valid() || rd.Options.ForDifficulty(difficulty) != word {
		return ErrWordNotOffered
	}

	rd.Word = word
	rd.Difficulty = difficulty
	rd.Phase = PhaseActive
	rd.StartedAt = time.Now()
	r.Strokes = nil

	seq := r.roundSeq
	rd.timer = time.AfterFunc(r.RoundDuration(), func() {
		r.endRoundIfCurrent(seq, "timeUp")
	})

	r.broadcastAll(RoomEvent{
		Type: EventRoundStarted,
		Payload: map[string]interface{}{
			"artist":     rd.ArtistID.String(),
			"wordLength": len(rd.Word),
			"difficulty": string(rd.Difficulty),
			"category":   rd.Category,
		},
	})
	return nil
}

// GuessOutcome reports what a submitted guess did.
type GuessOutcome struct {
	Correct       bool
	Points        int
	AlreadyScored bool
	RoundOver     bool
}

// SubmitGuess checks a guess against the secret word, case-insensitively.
// The first correct guess per player scores via the scoring engine and is
// recorded so repeats cannot double-award; wrong guesses get only a private
// negative result. When every non-artist has guessed, the round ends early.
func (r *Room) SubmitGuess(connID uuid.UUID, text string) (GuessOutcome, error) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	rd := r.Round
	if rd == nil || rd.Phase != PhaseActive {
		return GuessOutcome{}, ErrInvalidTransition
	}
	p, ok := r.Players[connID]
	if !ok {
		return GuessOutcome{}, ErrPlayerNotFound
	}
	if connID == rd.ArtistID {
		return GuessOutcome{}, ErrArtistCannotGuess
	}

	if !strings.EqualFold(text, rd.Word) {
		r.sendTo(connID, RoomEvent{
			Type:    EventGuessResult,
			Payload: map[string]interface{}{"correct": false},
		})
		return GuessOutcome{}, nil
	}

	if rd.CorrectGuessers[connID] {
		// Already scored this round; acknowledge without a second award.
		r.sendTo(connID, RoomEvent{
			Type:    EventGuessResult,
			Payload: map[string]interface{}{"correct": true},
		})
		return GuessOutcome{Correct: true, AlreadyScored: true}, nil
	}

	pts := Points(time.Since(rd.StartedAt), r.RoundDuration(), rd.Difficulty, p.Streak)
	p.Score += pts
	rd.CorrectGuessers[connID] = true

	r.sendTo(connID, RoomEvent{
		Type:    EventGuessResult,
		Payload: map[string]interface{}{"correct": true, "points": pts},
	})
	r.broadcastAll(RoomEvent{
		Type: EventCorrectGuess,
		Payload: map[string]interface{}{
			"playerId": connID.String(),
			"guess":    text,
			"points":   pts,
		},
	})

	outcome := GuessOutcome{Correct: true, Points: pts}
	if r.allGuessedLocked() {
		r.endRoundLocked("allGuessed")
		outcome.RoundOver = true
	}
	return outcome, nil
}

// AbandonRound force-ends the active round, e.g. after a cheat penalty.
func (r *Room) AbandonRound(reason string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.endRoundLocked(reason)
}

// allGuessedLocked reports whether every non-artist member has guessed
// correctly. Callers hold Mu.
func (r *Room) allGuessedLocked() bool {
	rd := r.Round
	if rd == nil {
		return false
	}
	guessers := 0
	for id := range r.Players {
		if id == rd.ArtistID {
			continue
		}
		if !rd.CorrectGuessers[id] {
			return false
		}
		guessers++
	}
	return guessers > 0
}

// endRoundIfCurrent closes the round identified by seq. A stale timer firing
// after that round already ended is a no-op.
func (r *Room) endRoundIfCurrent(seq uint64, reason string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.Round == nil || r.roundSeq != seq {
		return
	}
	r.endRoundLocked(reason)
}

// endRoundLocked clears the round, advances streaks, and announces the
// result. Streaks advance for non-artists who scored and reset for those who
// didn't; the artist's streak is untouched. Callers hold Mu.
func (r *Room) endRoundLocked(reason string) {
	rd := r.Round
	if rd == nil {
		return
	}
	if rd.timer != nil {
		rd.timer.Stop()
		rd.timer = nil
	}

	for id, p := range r.Players {
		if id == rd.ArtistID {
			p.IsArtist = false
			continue
		}
		if rd.Phase == PhaseActive {
			if rd.CorrectGuessers[id] {
				p.Streak++
			} else {
				p.Streak = 0
			}
		}
	}

	r.Round = nil
	r.Strokes = nil

	r.broadcastAll(RoomEvent{
		Type: EventRoundEnded,
		Payload: map[string]interface{}{
			"word":   rd.Word,
			"reason": reason,
			"scores": r.scoreboardLocked(),
		},
	})
}
