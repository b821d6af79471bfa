// internal/models/report.go
package models

import "github.com/google/uuid"

// Report is a single complaint filed against a room member.
type Report struct {
	ReporterID uuid.UUID `json:"reporterId"`
	Reason     string    `json:"reason"`
}
