// internal/game/hints_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseHintDeductsAndBroadcasts(t *testing.T) {
	room, ids, conns := newTestRoom(t, 2)
	artist := ids[0]
	room.Players[artist].Score = 100
	forceActiveRound(room, artist, "apple", DifficultyEasy)

	remaining, err := room.UseHint("firstLetter")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
	assert.Equal(t, 80, room.Players[artist].Score)

	ev := lastEventOfType(drainEvents(conns[ids[1]]), EventHintUsed)
	require.NotNil(t, ev)
	assert.Equal(t, "firstLetter", ev.Payload["hintType"])
	assert.Equal(t, 2, ev.Payload["remainingHints"])
	assert.NotContains(t, ev.Payload, "word")
}

func TestUseHintLimitThreePerRound(t *testing.T) {
	room, ids, conns := newTestRoom(t, 2)
	artist := ids[0]
	room.Players[artist].Score = 1000
	forceActiveRound(room, artist, "apple", DifficultyEasy)

	for i := 0; i < 3; i++ {
		remaining, err := room.UseHint("firstLetter")
		require.NoError(t, err)
		assert.Equal(t, 2-i, remaining)
	}
	scoreAfterThree := room.Players[artist].Score
	drainEvents(conns[ids[1]])

	_, err := room.UseHint("firstLetter")
	assert.ErrorIs(t, err, ErrHintExhausted)
	assert.Equal(t, scoreAfterThree, room.Players[artist].Score, "rejected hint must not deduct")
	assert.Empty(t, drainEvents(conns[ids[1]]), "rejected hint must not broadcast")
}

func TestUseHintClampsArtistScoreAtZero(t *testing.T) {
	room, ids, _ := newTestRoom(t, 2)
	artist := ids[0]
	room.Players[artist].Score = 30
	forceActiveRound(room, artist, "apple", DifficultyEasy)

	_, err := room.UseHint("silhouette") // costs 50
	require.NoError(t, err)
	assert.Zero(t, room.Players[artist].Score)

	_, err = room.UseHint("category")
	require.NoError(t, err)
	assert.Zero(t, room.Players[artist].Score, "score must never go negative")
}

func TestUseHintUnknownTypeFreeButCounted(t *testing.T) {
	room, ids, _ := newTestRoom(t, 2)
	artist := ids[0]
	room.Players[artist].Score = 100
	forceActiveRound(room, artist, "apple", DifficultyEasy)

	remaining, err := room.UseHint("crystalBall")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining, "unknown hint type still consumes a slot")
	assert.Equal(t, 100, room.Players[artist].Score, "unknown hint type costs nothing")
}

func TestUseHintRequiresActiveRound(t *testing.T) {
	room, _, _ := newTestRoom(t, 2)
	_, err := room.UseHint("firstLetter")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, room.StartRound("basic"))
	_, err = room.UseHint("firstLetter")
	assert.ErrorIs(t, err, ErrInvalidTransition, "hints are not usable before the word is fixed")
}
