package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnreachable indicates the Ollama host could not be reached at all, as
// opposed to the backend answering with a non-2xx status.
var ErrUnreachable = errors.New("ollama backend unreachable")

// StatusError is returned when the backend responds with a non-2xx status.
// The body is passed through untouched.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama api returned status %d: %s", e.Code, e.Body)
}

// Config holds the backend endpoint settings, captured once at startup.
type Config struct {
	Host  string // e.g. http://localhost:11434, no trailing slash
	Model string
}

// GenerateRequest is one text(+image) generation call.
type GenerateRequest struct {
	Prompt string
	Images [][]byte
	// Temperature overrides the model default when non-nil.
	Temperature *float64
}

// Client speaks the Ollama /api/generate protocol. Call deadlines are the
// caller's responsibility via ctx; the client itself sets no timeout.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type generateReq struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Images  []string      `json:"images,omitempty"`
	Stream  bool          `json:"stream"`
	Options *generateOpts `json:"options,omitempty"`
}

type generateOpts struct {
	Temperature float64 `json:"temperature"`
}

type generateResp struct {
	Response string `json:"response"`
}

// Generate sends one non-streaming generation request and returns the
// model's text. Connection-level failures (including a ctx deadline) wrap
// ErrUnreachable; HTTP-level failures come back as *StatusError.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := generateReq{
		Model:  c.cfg.Model,
		Prompt: req.Prompt,
		Stream: false,
	}
	for _, img := range req.Images {
		body.Images = append(body.Images, base64.StdEncoding.EncodeToString(img))
	}
	if req.Temperature != nil {
		body.Options = &generateOpts{Temperature: *req.Temperature}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.cfg.Host+"/api/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var result generateResp
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	return result.Response, nil
}
