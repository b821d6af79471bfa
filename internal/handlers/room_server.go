// internal/handlers/room_server.go
package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/scrawl/internal/game"
)

// RoomServer bundles the room registry with the injected external
// classifiers and the shared logger used by the websocket handlers.
type RoomServer struct {
	Rooms    *game.RoomStore
	Detector game.TextDetector
	Filter   game.ProfanityFilter
	Logger   *logrus.Logger
}

func NewRoomServer(detector game.TextDetector, filter game.ProfanityFilter, logger *logrus.Logger) *RoomServer {
	return &RoomServer{
		Rooms:    game.NewRoomStore(),
		Detector: detector,
		Filter:   filter,
		Logger:   logger,
	}
}
