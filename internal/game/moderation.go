// internal/game/moderation.go
package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/scrawl/internal/models"
)

// ProfanityFilter is the external chat classifier. Clean returns the cleaned
// text and whether the original was flagged profane. Implementations are
// injected so the core is testable without the real service.
type ProfanityFilter interface {
	Clean(ctx context.Context, text string) (string, bool, error)
}

const (
	// reportMuteThreshold: distinct reporters beyond this count trigger a mute.
	reportMuteThreshold = 2
	muteDuration        = 5 * time.Minute
)

// PostMessage delivers a chat line the profanity filter has already screened,
// or records the block. blocked covers both a profane verdict and a filter
// outage (fail closed). Muted senders get a private muted notice until the
// mute expires on its own.
func (r *Room) PostMessage(connID uuid.UUID, cleaned string, blocked bool) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	p, ok := r.Players[connID]
	if !ok {
		return ErrPlayerNotFound
	}

	now := time.Now()
	if p.Muted(now) {
		r.sendTo(connID, RoomEvent{
			Type: EventMuted,
			Payload: map[string]interface{}{
				"duration": int(p.MutedUntil.Sub(now).Seconds()),
			},
		})
		return nil
	}
	if blocked {
		r.sendTo(connID, RoomEvent{Type: EventMessageBlocked})
		return nil
	}

	r.broadcastAll(RoomEvent{
		Type: EventNewMessage,
		Payload: map[string]interface{}{
			"userId":    connID.String(),
			"text":      cleaned,
			"timestamp": now.UnixMilli(),
		},
	})
	return nil
}

// ReportPlayer files a report against target. The third distinct reporter
// triggers a single five-minute mute; repeat reporters and reports past the
// crossing accumulate in the ledger without re-triggering it.
func (r *Room) ReportPlayer(reporterID, targetID uuid.UUID, reason string) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	target, ok := r.Players[targetID]
	if !ok {
		return ErrPlayerNotFound
	}

	r.Reports[targetID] = append(r.Reports[targetID], models.Report{
		ReporterID: reporterID,
		Reason:     reason,
	})

	reporters := make(map[uuid.UUID]bool)
	for _, rep := range r.Reports[targetID] {
		reporters[rep.ReporterID] = true
	}

	if len(reporters) > reportMuteThreshold && !r.muteIssued[targetID] {
		r.muteIssued[targetID] = true
		target.MutedUntil = time.Now().Add(muteDuration)
		r.sendTo(targetID, RoomEvent{
			Type: EventMuted,
			Payload: map[string]interface{}{
				"duration": int(muteDuration.Seconds()),
			},
		})
	}
	return nil
}
