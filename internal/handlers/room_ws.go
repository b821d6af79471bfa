// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/scrawl/internal/game"
	"github.com/jason-s-yu/scrawl/internal/models"
)

// ClientMessage is the wire shape for every inbound client event. Type
// selects the action; the remaining fields are populated per event.
type ClientMessage struct {
	Type       string             `json:"type"`
	RoomID     string             `json:"roomId,omitempty"`
	PlayerName string             `json:"playerName,omitempty"`
	Settings   *game.RoomSettings `json:"settings,omitempty"`
	PackName   string             `json:"packName,omitempty"`
	Word       string             `json:"word,omitempty"`
	Difficulty string             `json:"difficulty,omitempty"`
	Stroke     *models.Stroke     `json:"stroke,omitempty"`
	Guess      string             `json:"guess,omitempty"`
	HintType   string             `json:"hintType,omitempty"`
	Text       string             `json:"text,omitempty"`
	UserID     string             `json:"userId,omitempty"`
	TargetID   string             `json:"targetId,omitempty"`
	Reason     string             `json:"reason,omitempty"`
	Data       json.RawMessage    `json:"data,omitempty"`
}

// RoomWSHandler upgrades the connection, assigns the ephemeral player ID, and
// runs the read loop until the client goes away. All room state the client
// touched is cleaned up on exit; an emptied room is deleted.
func RoomWSHandler(logger *logrus.Logger, rs *RoomServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"scrawl"},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "scrawl" {
			c.Close(BadSubprotocolError, "client must speak the scrawl subprotocol")
			return
		}

		// The connection ID is the player's identity for its lifetime.
		connID := uuid.New()
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		conn := &game.RoomConnection{
			PlayerID: connID,
			Cancel:   cancel,
			OutChan:  make(chan game.RoomEvent, 32),
		}

		logger.Infof("Player %v connected from %s", connID, r.RemoteAddr)
		conn.Send(game.RoomEvent{
			Type:    game.EventConnected,
			Payload: map[string]interface{}{"playerId": connID.String()},
		})

		go writePump(ctx, c, conn, logger)
		readPump(ctx, c, rs, conn, logger)

		// Implicit disconnect: drop the player from whichever room holds it.
		rs.Rooms.Leave(connID)
		logger.Infof("Player %v cleanup complete", connID)
	}
}

// readPump handles incoming messages until the connection closes or the
// context is cancelled.
func readPump(ctx context.Context, c *websocket.Conn, rs *RoomServer, conn *game.RoomConnection, logger *logrus.Logger) {
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for player %v", conn.PlayerID)
			} else if strings.Contains(err.Error(), "context canceled") {
				logger.Infof("WebSocket context canceled for player %v", conn.PlayerID)
			} else {
				logger.Warnf("Read error for player %v: %v (CloseStatus: %d)", conn.PlayerID, err, status)
			}
			return
		}

		if typ != websocket.MessageText {
			logger.Warnf("Ignoring non-text message type %d from player %v", typ, conn.PlayerID)
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid json from player %v: %v", conn.PlayerID, err)
			conn.SendError("Invalid JSON format")
			continue
		}

		rs.handleMessage(ctx, conn, msg)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// handleMessage routes one inbound event. External classifier calls happen
// here, before any room lock is taken, so a slow classifier never stalls a
// room mid-mutation.
func (rs *RoomServer) handleMessage(ctx context.Context, conn *game.RoomConnection, msg ClientMessage) {
	connID := conn.PlayerID

	switch msg.Type {
	case "createRoom":
		if _, inRoom := rs.Rooms.RoomFor(connID); inRoom {
			conn.SendError("Already in a room")
			return
		}
		var settings game.RoomSettings
		if msg.Settings != nil {
			settings = *msg.Settings
		}
		creator := &models.Player{ID: connID, Name: msg.PlayerName}
		room, err := rs.Rooms.CreateRoom(msg.RoomID, settings, creator, conn)
		if err != nil {
			conn.SendError(err.Error())
			return
		}
		rs.Logger.Infof("Player %v created room %s", connID, room.ID)
		conn.Send(game.RoomEvent{
			Type:    game.EventRoomCreated,
			Payload: map[string]interface{}{"roomId": room.ID},
		})

	case "joinRoom":
		if _, inRoom := rs.Rooms.RoomFor(connID); inRoom {
			conn.SendError("Already in a room")
			return
		}
		p := &models.Player{ID: connID, Name: msg.PlayerName}
		room, err := rs.Rooms.JoinRoom(msg.RoomID, p, conn)
		if err != nil {
			conn.SendError(err.Error())
			return
		}
		rs.Logger.Infof("Player %v joined room %s", connID, room.ID)

	case "startRound":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		if err := room.StartRound(msg.PackName); err != nil {
			conn.SendError(err.Error())
		}

	case "selectWord":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		if err := room.SelectWord(connID, msg.Word, game.Difficulty(msg.Difficulty)); err != nil {
			conn.SendError(err.Error())
		}

	case "submitStroke":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		if msg.Stroke == nil {
			conn.SendError("Missing stroke payload")
			return
		}
		// Classifier verdict is fetched before touching room state. A
		// detector outage fails open so play is never blocked on it.
		detected := false
		if msg.Stroke.Image != "" && room.RoundActive() {
			var err error
			detected, err = rs.Detector.DetectText(ctx, msg.Stroke.Image)
			if err != nil {
				rs.Logger.Warnf("Text detector unavailable for room %s: %v", room.ID, err)
				detected = false
			}
		}
		verdict, _, err := room.ApplyStroke(connID, *msg.Stroke, detected)
		if err != nil {
			conn.SendError(err.Error())
			return
		}
		if verdict == game.StrokePenalty {
			// Enforcement choice: the round is forfeited.
			room.AbandonRound("cheatPenalty")
		}

	case "submitGuess":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		if _, err := room.SubmitGuess(connID, msg.Guess); err != nil {
			conn.SendError(err.Error())
		}

	case "useHint":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		if _, err := room.UseHint(msg.HintType); err != nil {
			conn.SendError(err.Error())
		}

	case "sendMessage":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		// Filter outage fails closed: the message is blocked, not passed
		// through unscreened.
		cleaned, profane, err := rs.Filter.Clean(ctx, msg.Text)
		if err != nil {
			rs.Logger.Warnf("Profanity filter unavailable for room %s: %v", room.ID, err)
			cleaned, profane = "", true
		}
		if err := room.PostMessage(connID, cleaned, profane); err != nil {
			conn.SendError(err.Error())
		}

	case "reportUser":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		targetID, err := uuid.Parse(msg.UserID)
		if err != nil {
			conn.SendError("Invalid userId format")
			return
		}
		if err := room.ReportPlayer(connID, targetID, msg.Reason); err != nil {
			conn.SendError(err.Error())
		}

	case "signal":
		room, ok := rs.memberRoom(conn, msg.RoomID)
		if !ok {
			return
		}
		targetID, err := uuid.Parse(msg.TargetID)
		if err != nil {
			conn.SendError("Invalid targetId format")
			return
		}
		if err := room.RelaySignal(connID, targetID, msg.Data); err != nil {
			conn.SendError(err.Error())
		}

	case "ping":
		conn.Send(game.RoomEvent{Type: game.EventPong})

	default:
		rs.Logger.Warnf("Unknown action '%s' from player %v", msg.Type, connID)
		conn.SendError(fmt.Sprintf("Unknown action type: %s", msg.Type))
	}
}

// memberRoom resolves the target room and verifies the sender belongs to it.
// A miss is reported privately to the sender, never broadcast.
func (rs *RoomServer) memberRoom(conn *game.RoomConnection, roomID string) (*game.Room, bool) {
	room, ok := rs.Rooms.GetRoom(roomID)
	if !ok {
		conn.SendError(game.ErrRoomNotFound.Error())
		return nil, false
	}
	if !room.HasPlayer(conn.PlayerID) {
		conn.SendError(game.ErrPlayerNotFound.Error())
		return nil, false
	}
	return room, true
}

// writePump drains the connection's event channel onto the websocket and
// pings periodically so dead peers are noticed.
func writePump(ctx context.Context, c *websocket.Conn, conn *game.RoomConnection, logger *logrus.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-conn.OutChan:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Warnf("Failed to marshal outgoing event for player %v: %v", conn.PlayerID, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = c.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logger.Warnf("Failed to write to websocket for player %v: %v", conn.PlayerID, err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warnf("Ping failed for player %v: %v. Assuming disconnect.", conn.PlayerID, err)
				return
			}
		}
	}
}
