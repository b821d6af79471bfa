// internal/classifier/client.go

// Package classifier provides HTTP clients for the external text-detection
// and profanity services, plus no-op stand-ins for when no service is
// configured. Both satisfy the capability interfaces in internal/game.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const requestTimeout = 3 * time.Second

// TextDetectorClient asks the text-recognition service whether a rendered
// stroke image contains readable text.
type TextDetectorClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewTextDetectorClient(baseURL string, logger *logrus.Logger) *TextDetectorClient {
	return &TextDetectorClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// DetectText posts the base64 image to the classifier. The caller decides
// what an error means; the anti-cheat gate treats it as no detection.
func (c *TextDetectorClient) DetectText(ctx context.Context, image string) (bool, error) {
	var resp struct {
		TextDetected bool `json:"textDetected"`
	}
	if err := c.post(ctx, "/detect", map[string]string{"image": image}, &resp); err != nil {
		return false, err
	}
	return resp.TextDetected, nil
}

func (c *TextDetectorClient) post(ctx context.Context, path string, body, out interface{}) error {
	return postJSON(ctx, c.client, c.baseURL+path, body, out)
}

// ProfanityClient asks the text classifier to clean a chat message and
// flag profanity.
type ProfanityClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewProfanityClient(baseURL string, logger *logrus.Logger) *ProfanityClient {
	return &ProfanityClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// Clean returns the cleaned text and whether the original was profane. The
// moderation gate blocks the message on error.
func (c *ProfanityClient) Clean(ctx context.Context, text string) (string, bool, error) {
	var resp struct {
		CleanText string `json:"cleanText"`
		Profane   bool   `json:"profane"`
	}
	if err := postJSON(ctx, c.client, c.baseURL+"/clean", map[string]string{"text": text}, &resp); err != nil {
		return "", false, err
	}
	return resp.CleanText, resp.Profane, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("classifier returned status %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
