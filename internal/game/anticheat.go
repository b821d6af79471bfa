// internal/game/anticheat.go
package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
)

// TextDetector is the external classifier deciding whether a rendered stroke
// contains readable text. Implementations are injected so the core is
// testable without the real service.
type TextDetector interface {
	DetectText(ctx context.Context, image string) (bool, error)
}

// violationThreshold is the violation count beyond which a penalty fires.
const violationThreshold = 3

// StrokeVerdict is the outcome of the anti-cheat gate for one stroke.
type StrokeVerdict int

const (
	StrokeAccepted StrokeVerdict = iota
	StrokeViolation
	StrokePenalty
)

// ApplyStroke records or rejects a stroke the text detector has already
// screened. textDetected is the classifier verdict, obtained by the caller
// outside the room lock; a detector outage is mapped to false upstream
// (fail open). Accepted strokes are appended to the log with the detection
// image stripped and relayed to every other member in submission order.
// Flagged strokes are neither logged nor relayed; the artist gets a private
// warning, and the crossing of the violation threshold additionally raises
// a penalty exactly once per round.
func (r *Room) ApplyStroke(connID uuid.UUID, stroke models.Stroke, textDetected bool) (StrokeVerdict, int, error) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	rd := r.Round
	if rd == nil || rd.Phase != PhaseActive {
		return StrokeAccepted, 0, ErrInvalidTransition
	}
	if connID != rd.ArtistID {
		return StrokeAccepted, rd.Violations, ErrNotArtist
	}

	if textDetected {
		rd.Violations++
		r.sendTo(connID, RoomEvent{
			Type:    EventCheatWarning,
			Payload: map[string]interface{}{"violations": rd.Violations},
		})
		if rd.Violations > violationThreshold && !rd.penaltySent {
			rd.penaltySent = true
			r.broadcastAll(RoomEvent{Type: EventCheatPenalty})
			return StrokePenalty, rd.Violations, nil
		}
		return StrokeViolation, rd.Violations, nil
	}

	relay := stroke.ForRelay()
	r.Strokes = append(r.Strokes, relay)
	r.broadcastExcept(connID, RoomEvent{
		Type:    EventNewStroke,
		Payload: map[string]interface{}{"stroke": relay},
	})
	return StrokeAccepted, rd.Violations, nil
}
