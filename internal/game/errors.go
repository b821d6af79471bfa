// internal/game/errors.go
package game

import "errors"

// Error taxonomy for room operations. None of these is fatal; handlers relay
// them privately to the offending client.
var (
	ErrRoomExists        = errors.New("room already exists")
	ErrRoomNotFound      = errors.New("room not found")
	ErrPlayerNotFound    = errors.New("player not in room")
	ErrEmptyRoom         = errors.New("room has no players")
	ErrInvalidTransition = errors.New("action not valid in current round state")
	ErrNotArtist         = errors.New("only the artist may do that")
	ErrArtistCannotGuess = errors.New("the artist cannot guess")
	ErrWordNotOffered    = errors.New("word was not among the offered options")
	ErrHintExhausted     = errors.New("hint limit reached for this round")
)
