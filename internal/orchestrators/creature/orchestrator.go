// Package creature implements the creature lookup orchestrator. It
// composes the catalog client with the two styler clients, applies the
// style selection rule, and guarantees a usable record even when a styler
// fails.
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/creaturelab/creature-api/internal/orchestrators/creature Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/creaturelab/creature-api/internal/clients/catalog"
	"github.com/creaturelab/creature-api/internal/clients/styler"
	creatureentity "github.com/creaturelab/creature-api/internal/entities/creature"
	"github.com/creaturelab/creature-api/internal/errors"
)

const (
	// Language code selected from the catalog's flavor text entries
	languageEnglish = "en"

	// Placeholders keep Record.Description and Record.Habitat non-empty
	placeholderDescription = "No description available"
	placeholderHabitat     = "unknown"

	// Habitat that forces the mystic style regardless of rarity
	habitatCave = "cave"
)

// descriptionCleaner collapses the catalog's fixed-width formatting.
// Each literal newline, carriage return, or form feed becomes one space.
var descriptionCleaner = strings.NewReplacer("\n", " ", "\r", " ", "\f", " ")

// Service defines the interface for creature lookups
type Service interface {
	// GetCreature returns the unified record for a named creature
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)

	// GetStyledCreature returns the record with its description rewritten
	// by the selected style service, falling back to the original text
	// when the transform fails
	GetStyledCreature(ctx context.Context, input *GetStyledCreatureInput) (*GetStyledCreatureOutput, error)
}

// Config holds the dependencies for the creature orchestrator
type Config struct {
	CatalogClient catalog.Client
	MysticStyler  styler.Client
	BardStyler    styler.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.MysticStyler == nil {
		vb.RequiredField("MysticStyler")
	}
	if c.BardStyler == nil {
		vb.RequiredField("BardStyler")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogClient catalog.Client
	stylers       map[styler.Style]styler.Client
}

// NewOrchestrator creates a new creature orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogClient: cfg.CatalogClient,
		stylers: map[styler.Style]styler.Client{
			styler.StyleMystic: cfg.MysticStyler,
			styler.StyleBard:   cfg.BardStyler,
		},
	}, nil
}

// SelectStyle is the pure style selection rule: mystic for cave-dwelling
// (any casing) or rare creatures, bard for everything else. Total over
// every (habitat, isRare) pair.
func SelectStyle(habitat string, isRare bool) styler.Style {
	if isRare || strings.EqualFold(habitat, habitatCave) {
		return styler.StyleMystic
	}
	return styler.StyleBard
}

// GetCreature looks up a creature and assembles its unified record
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	record, err := o.lookup(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	return &GetCreatureOutput{Record: record}, nil
}

// GetStyledCreature looks up a creature and rewrites its description with
// the selected style. A styler failure is absorbed: the record is returned
// with the original description and the failure is only logged.
func (o *orchestrator) GetStyledCreature(ctx context.Context, input *GetStyledCreatureInput) (*GetStyledCreatureOutput, error) {
	record, err := o.lookup(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	style := SelectStyle(record.Habitat, record.IsRare)

	styled, err := o.stylers[style].Transform(ctx, record.Description)
	if err != nil {
		// Rate limits are logged apart from other transform failures,
		// though both fall back identically
		if errors.IsResourceExhausted(err) {
			slog.Warn("style service rate limited, keeping original description",
				"name", record.Name,
				"style", string(style),
				"error", err,
			)
		} else {
			slog.Warn("style transform failed, keeping original description",
				"name", record.Name,
				"style", string(style),
				"code", errors.GetCode(err).String(),
				"error", err,
			)
		}
		return &GetStyledCreatureOutput{Record: record, Style: style}, nil
	}

	return &GetStyledCreatureOutput{
		Record: &creatureentity.Record{
			Name:        record.Name,
			Description: styled,
			Habitat:     record.Habitat,
			IsRare:      record.IsRare,
		},
		Style: style,
	}, nil
}

// lookup runs the shared catalog pipeline: base record, species detail,
// then assembly. Catalog errors are fatal and propagate with their codes
// unchanged.
func (o *orchestrator) lookup(ctx context.Context, name string) (*creatureentity.Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	entry, err := o.catalogClient.GetCreature(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch creature %q", name)
	}

	species, err := o.catalogClient.GetSpecies(ctx, entry.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch species detail for %q", entry.Name)
	}

	record := &creatureentity.Record{
		Name:        entry.Name,
		Description: englishDescription(species),
		Habitat:     species.Habitat,
		IsRare:      species.IsRare,
	}
	if record.Habitat == "" {
		record.Habitat = placeholderHabitat
	}

	slog.Info("creature looked up",
		"name", record.Name,
		"habitat", record.Habitat,
		"is_rare", record.IsRare,
	)

	return record, nil
}

// englishDescription returns the first English flavor text, cleaned of the
// catalog's embedded line breaks, or the placeholder when none exists.
func englishDescription(species *catalog.Species) string {
	for _, entry := range species.FlavorTexts {
		if entry.Language == languageEnglish {
			return descriptionCleaner.Replace(entry.Text)
		}
	}
	return placeholderDescription
}
