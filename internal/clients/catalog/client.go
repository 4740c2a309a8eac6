// Package catalog is the client for the external creature catalog service.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/creaturelab/creature-api/internal/clients/catalog Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/creaturelab/creature-api/internal/errors"
)

// Client defines the interface for creature catalog lookups
type Client interface {
	// GetCreature fetches the base record for a named creature
	GetCreature(ctx context.Context, name string) (*Creature, error)

	// GetSpecies fetches the extended species detail for a creature id
	GetSpecies(ctx context.Context, id int) (*Species, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL for the catalog service (required)
	BaseURL string
	// HTTPTimeout for catalog requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the pooled client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.BaseURL == "" {
		vb.RequiredField("BaseURL")
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// Connections to the catalog are pooled and reused across requests
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) GetCreature(ctx context.Context, name string) (*Creature, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	endpoint := fmt.Sprintf("%s/creature/%s", c.baseURL, url.PathEscape(normalized))

	var wire creatureResponse
	if err := c.getJSON(ctx, endpoint, &wire, func() *errors.Error {
		return errors.NotFoundf("creature %q not found", normalized).WithMeta("name", normalized)
	}); err != nil {
		return nil, err
	}

	return wire.toCreature(), nil
}

func (c *client) GetSpecies(ctx context.Context, id int) (*Species, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("creature id must be positive, got %d", id)
	}

	endpoint := fmt.Sprintf("%s/creature-species/%d", c.baseURL, id)

	var wire speciesResponse
	if err := c.getJSON(ctx, endpoint, &wire, func() *errors.Error {
		return errors.NotFoundf("species %d not found", id).WithMeta("id", id)
	}); err != nil {
		return nil, err
	}

	return wire.toSpecies(), nil
}

// getJSON performs a single GET round trip and decodes the response body.
// No retries: a failed call is reported once and mapped to the error
// taxonomy (404 to NotFound via notFound, anything else to Unavailable).
func (c *client) getJSON(ctx context.Context, endpoint string, out interface{}, notFound func() *errors.Error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build catalog request for %s", endpoint)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "catalog request canceled")
		}
		slog.Warn("catalog request failed",
			"endpoint", endpoint,
			"error", err,
		)
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "catalog request to %s failed", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		slog.Info("catalog entity not found", "endpoint", endpoint)
		return notFound()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		slog.Warn("catalog returned unexpected status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
		)
		return errors.Unavailablef("catalog returned status %d", resp.StatusCode).
			WithMeta("endpoint", endpoint).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Warn("catalog returned malformed body",
			"endpoint", endpoint,
			"error", err,
		)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode catalog response")
	}

	return nil
}
