// internal/models/stroke.go
package models

// StrokePoint is a single timestamped point along a stroke path. T is
// milliseconds relative to the stroke start.
type StrokePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t"`
}

// Stroke is one drawing gesture authored by the artist. Image optionally
// carries a base64 render of the affected canvas region; it is consumed by
// the text detector and stripped before the stroke is logged or relayed.
type Stroke struct {
	Points []StrokePoint `json:"points"`
	Color  string        `json:"color"`
	Width  float64       `json:"width"`
	Image  string        `json:"image,omitempty"`
}

// ForRelay returns a copy safe to log and fan out to other members.
func (s Stroke) ForRelay() Stroke {
	s.Image = ""
	return s
}
