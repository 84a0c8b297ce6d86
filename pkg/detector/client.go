package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/anonydoc/anonydoc/pkg/entity"
	"gitlab.com/tozd/go/errors"
)

// maxResponseBytes bounds how much of a sidecar response we read.
const maxResponseBytes = 10 << 20 // 10 MB

// Client calls a GLiNER-style NER sidecar over HTTP. The sidecar exposes
// POST {endpoint}/predict taking {text, labels, model} and returning
// {entities: [{start, end, label, text, score}]}.
type Client struct {
	url   string
	model string
	http  *http.Client
}

// NewClient creates a Client for the sidecar at baseURL
// (e.g. "http://gliner:8001"). A zero timeout defaults to 10s.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:   baseURL + "/predict",
		model: model,
		http:  &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
	Model  string   `json:"model,omitempty"`
}

type predictResponse struct {
	Entities []entity.Candidate `json:"entities"`
}

// Detect implements Detector.
func (c *Client) Detect(ctx context.Context, text string, labels []string) ([]entity.Candidate, error) {
	if text == "" || len(labels) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(predictRequest{Text: text, Labels: labels, Model: c.model})
	if err != nil {
		return nil, errors.Errorf("encoding predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Errorf("creating predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Errorf("calling detector sidecar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("detector sidecar returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Errorf("reading detector response: %w", err)
	}

	var pr predictResponse
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, errors.Errorf("decoding detector response: %w", err)
	}
	return pr.Entities, nil
}
