// Package styler is the client for the external style-transform services.
//
// Two variants are configured at startup, one per style, each bound to its
// own endpoint and timeout. The protocol is identical for both. Failures
// are returned as typed errors; callers decide whether a failed transform
// is fatal.
package styler

//go:generate mockgen -destination=mock/mock_client.go -package=stylermock github.com/creaturelab/creature-api/internal/clients/styler Client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/creaturelab/creature-api/internal/errors"
)

// Style identifies a configured style-transform variant
type Style string

// Configured styles
const (
	// StyleMystic is applied to cave-dwelling and rare creatures
	StyleMystic Style = "mystic"
	// StyleBard is applied to everything else
	StyleBard Style = "bard"
)

// Client defines the interface for style-transform calls
type Client interface {
	// Transform rewrites text in the client's configured style
	Transform(ctx context.Context, text string) (string, error)

	// Style returns the variant this client is bound to
	Style() Style
}

// Config contains configuration options for a styler client.
type Config struct {
	// Style names the variant this client serves (required)
	Style Style
	// BaseURL for the style-transform endpoint (required)
	BaseURL string
	// HTTPTimeout for transform requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the pooled client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Style == "" {
		vb.RequiredField("Style")
	}
	if cfg.BaseURL == "" {
		vb.RequiredField("BaseURL")
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return vb.Build()
}

type client struct {
	style      Style
	baseURL    string
	httpClient *http.Client
}

// New creates a new styler client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		style:      cfg.Style,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) Style() Style {
	return c.style
}

// Transform performs a single round trip to the style service. A 429 maps
// to ResourceExhausted, any other non-success status or malformed body to
// Unavailable, and a success response without translated content to
// Internal. The wire envelope is {contents: {translated, text, translation}}.
func (c *client) Transform(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.InvalidArgument("text to transform is required")
	}

	endpoint := c.baseURL + "?text=" + url.QueryEscape(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build %s transform request", c.style)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.WrapWithCodef(err, errors.CodeCanceled, "%s transform request canceled", c.style)
		}
		return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "%s transform request failed", c.style).
			WithMeta("style", string(c.style))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errors.ResourceExhaustedf("%s style service rate limited: %s", c.style, c.errorMessage(resp)).
			WithMeta("style", string(c.style)).
			WithMeta("status", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Unavailablef("%s style service returned status %d: %s", c.style, resp.StatusCode, c.errorMessage(resp)).
			WithMeta("style", string(c.style)).
			WithMeta("status", resp.StatusCode)
	}

	var wire transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to decode %s transform response", c.style).
			WithMeta("style", string(c.style))
	}

	// A present-but-empty translated field is a failure, not a success
	if wire.Contents.Translated == "" {
		return "", errors.Internalf("%s style service returned no translated content", c.style).
			WithMeta("style", string(c.style))
	}

	slog.Debug("text transformed",
		"style", string(c.style),
		"input_len", len(text),
		"output_len", len(wire.Contents.Translated),
	)

	return wire.Contents.Translated, nil
}

// errorMessage pulls the message out of the service's {error: {code,
// message}} failure envelope, best effort.
func (c *client) errorMessage(resp *http.Response) string {
	var wire transformErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil || wire.Error.Message == "" {
		return "no error detail"
	}
	return wire.Error.Message
}
