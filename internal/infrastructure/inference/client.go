// Package inference turns a photo URL into a validated seasonal color
// classification by calling an external OpenAI-compatible multimodal
// completion endpoint. One best-effort attempt per call: no caching, no
// retries, no repair of invalid model output.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"palette-backend/internal/config"
	"palette-backend/internal/seasons"
)

var (
	// ErrMissingAPIKey is a fatal precondition failure raised before any
	// network call is attempted
	ErrMissingAPIKey = errors.New("inference api key is not configured")

	// ErrUpstream covers transport failures and non-2xx responses
	ErrUpstream = errors.New("inference request failed")

	// ErrInvalidResponse means the model answered but the payload failed
	// schema validation
	ErrInvalidResponse = errors.New("inference response failed validation")
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RecommendedColor is one model-recommended color for this user
type RecommendedColor struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Reason string `json:"reason"`
}

// Result is the validated classification tuple
type Result struct {
	Season            seasons.Season
	SubSeason         seasons.SubSeason
	Gender            seasons.Gender
	RecommendedColors []RecommendedColor // exactly 3
}

// Client issues classification requests
type Client struct {
	cfg  config.InferenceConfig
	http *http.Client
}

// NewClient builds a classification client.
// A missing API key fails here, at startup, rather than on the first upload.
func NewClient(cfg config.InferenceConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// ---- wire types (OpenAI-compatible chat completions) ----

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat responseFmt   `json:"response_format"`
	MaxTokens      int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string or []contentPart
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type responseFmt struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// rawClassification is the model's JSON answer before enum normalization
type rawClassification struct {
	Season            string             `json:"season"`
	SubSeason         string             `json:"subseason"`
	RecommendedColors []RecommendedColor `json:"recommendedColors"`
	Gender            string             `json:"gender"`
}

func (r rawClassification) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Season, validation.Required),
		validation.Field(&r.SubSeason, validation.Required),
		validation.Field(&r.Gender, validation.Required),
		validation.Field(&r.RecommendedColors, validation.Required, validation.Length(3, 3)),
	)
}

func (c RecommendedColor) validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Hex, validation.Required, validation.Match(hexPattern)),
		validation.Field(&c.Reason, validation.Required),
	)
}

// Classify sends one classification request for an already-uploaded photo.
// The context bounds the whole call; cancellation surfaces to the caller.
func (c *Client) Classify(ctx context.Context, photoURL string) (*Result, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageRef{URL: photoURL}},
			}},
		},
		ResponseFormat: responseFmt{Type: "json_object"},
		MaxTokens:      800,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	log.Info().
		Int("status", resp.StatusCode).
		Dur("latency_ms", time.Since(start)).
		Str("model", c.cfg.Model).
		Msg("Inference call completed")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if completion.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrInvalidResponse)
	}

	return parseClassification(completion.Choices[0].Message.Content)
}

// parseClassification validates the model's JSON answer and normalizes
// every string into the closed enums. Raw strings never leave this function.
func parseClassification(content string) (*Result, error) {
	var raw rawClassification
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if err := raw.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	for _, color := range raw.RecommendedColors {
		if err := color.validate(); err != nil {
			return nil, fmt.Errorf("%w: color %q: %v", ErrInvalidResponse, color.Name, err)
		}
	}

	season, ok := seasons.ParseSeason(raw.Season)
	if !ok {
		return nil, fmt.Errorf("%w: unknown season %q", ErrInvalidResponse, raw.Season)
	}
	sub, ok := seasons.ParseSubSeason(raw.SubSeason)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sub-season %q", ErrInvalidResponse, raw.SubSeason)
	}
	if !sub.BelongsTo(season) {
		return nil, fmt.Errorf("%w: sub-season %q does not belong to season %q", ErrInvalidResponse, sub, season)
	}
	gender, ok := seasons.ParseGender(raw.Gender)
	if !ok {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidResponse, raw.Gender)
	}

	return &Result{
		Season:            season,
		SubSeason:         sub,
		Gender:            gender,
		RecommendedColors: raw.RecommendedColors,
	}, nil
}
