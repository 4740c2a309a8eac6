package catalog

// Creature is the catalog's base record for a creature. It is transient;
// callers use ID to fetch the extended species detail.
type Creature struct {
	ID   int
	Name string
}

// FlavorText is one localized description entry from the species detail.
type FlavorText struct {
	// Language is the catalog's language code, e.g. "en"
	Language string
	Text     string
}

// Species is the catalog's extended record for a creature.
type Species struct {
	// Habitat is empty when the catalog reports no habitat
	Habitat string
	IsRare  bool
	// FlavorTexts preserves the catalog's ordering
	FlavorTexts []FlavorText
}

// Wire types for the catalog's JSON protocol.

type namedResource struct {
	Name string `json:"name"`
}

type creatureResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

type speciesResponse struct {
	Habitat           *namedResource    `json:"habitat"`
	IsLegendary       bool              `json:"is_legendary"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
}

func (r *creatureResponse) toCreature() *Creature {
	return &Creature{
		ID:   r.ID,
		Name: r.Name,
	}
}

func (r *speciesResponse) toSpecies() *Species {
	species := &Species{
		IsRare: r.IsLegendary,
	}
	if r.Habitat != nil {
		species.Habitat = r.Habitat.Name
	}
	for _, entry := range r.FlavorTextEntries {
		species.FlavorTexts = append(species.FlavorTexts, FlavorText{
			Language: entry.Language.Name,
			Text:     entry.FlavorText,
		})
	}
	return species
}
