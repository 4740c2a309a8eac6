package creature

import (
	"github.com/creaturelab/creature-api/internal/clients/styler"
	creatureentity "github.com/creaturelab/creature-api/internal/entities/creature"
)

// GetCreatureInput holds the parameters for a plain creature lookup
type GetCreatureInput struct {
	Name string
}

// GetCreatureOutput holds the result of a plain creature lookup
type GetCreatureOutput struct {
	Record *creatureentity.Record
}

// GetStyledCreatureInput holds the parameters for a styled creature lookup
type GetStyledCreatureInput struct {
	Name string
}

// GetStyledCreatureOutput holds the result of a styled creature lookup.
// Style reports which variant was selected, whether or not the transform
// succeeded.
type GetStyledCreatureOutput struct {
	Record *creatureentity.Record
	Style  styler.Style
}
