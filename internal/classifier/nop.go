// internal/classifier/nop.go
package classifier

import "context"

// NopDetector never detects text. Used when TEXT_DETECTOR_URL is unset.
type NopDetector struct{}

func (NopDetector) DetectText(ctx context.Context, image string) (bool, error) {
	return false, nil
}

// PassthroughFilter delivers chat unmodified. Used when PROFANITY_FILTER_URL
// is unset.
type PassthroughFilter struct{}

func (PassthroughFilter) Clean(ctx context.Context, text string) (string, bool, error) {
	return text, false, nil
}
