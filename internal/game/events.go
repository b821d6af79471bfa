// internal/game/events.go
package game

// RoomEventType is an enum-like type for the server -> client event
// vocabulary.
type RoomEventType string

const (
	EventConnected      RoomEventType = "connected" // private; carries the ephemeral player id
	EventRoomCreated    RoomEventType = "roomCreated"
	EventPlayerJoined   RoomEventType = "playerJoined"
	EventPlayerLeft     RoomEventType = "playerLeft"
	EventWordOptions    RoomEventType = "wordOptions" // artist only
	EventRoundStarted   RoomEventType = "roundStarted"
	EventRoundEnded     RoomEventType = "roundEnded"
	EventNewStroke      RoomEventType = "newStroke"
	EventGuessResult    RoomEventType = "guessResult" // guesser only
	EventCorrectGuess   RoomEventType = "correctGuess"
	EventHintUsed       RoomEventType = "hintUsed"
	EventCheatWarning   RoomEventType = "cheatWarning" // artist only
	EventCheatPenalty   RoomEventType = "cheatPenalty"
	EventNewMessage     RoomEventType = "newMessage"
	EventMessageBlocked RoomEventType = "messageBlocked" // sender only
	EventMuted          RoomEventType = "muted"          // target only
	EventSignal         RoomEventType = "signal"         // target only
	EventPong           RoomEventType = "pong"
	EventError          RoomEventType = "error"
)

// RoomEvent is the wire shape for every outbound room event.
type RoomEvent struct {
	Type    RoomEventType          `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// NewErrorEvent builds the standard private error event.
func NewErrorEvent(message string) RoomEvent {
	return RoomEvent{
		Type:    EventError,
		Payload: map[string]interface{}{"message": message},
	}
}
