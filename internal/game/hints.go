// internal/game/hints.go
package game

// maxHintsPerRound bounds hint usage for one round.
const maxHintsPerRound = 3

// hintCosts are deducted from the artist's score. Unknown hint types cost
// nothing but still consume a hint slot.
var hintCosts = map[string]int{
	"firstLetter": 20,
	"category":    30,
	"silhouette":  50,
}

// UseHint spends one of the round's hints and bills the artist, clamping the
// score at zero. The hint type and remaining count are broadcast; the word
// content itself is never transmitted here — revealing the letter, category,
// or silhouette is the caller's job, using the word the artist already knows.
func (r *Room) UseHint(hintType string) (remaining int, err error) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	rd := r.Round
	if rd == nil || rd.Phase != PhaseActive {
		return 0, ErrInvalidTransition
	}
	if rd.HintsUsed >= maxHintsPerRound {
		return 0, ErrHintExhausted
	}

	rd.HintsUsed++
	if artist, ok := r.Players[rd.ArtistID]; ok {
		artist.Score -= hintCosts[hintType]
		if artist.Score < 0 {
			artist.Score = 0
		}
	}

	remaining = maxHintsPerRound - rd.HintsUsed
	r.broadcastAll(RoomEvent{
		Type: EventHintUsed,
		Payload: map[string]interface{}{
			"hintType":       hintType,
			"remainingHints": remaining,
		},
	})
	return remaining, nil
}
