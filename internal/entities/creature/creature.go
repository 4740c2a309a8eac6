// Package creature defines the unified creature record served by the API,
// decoupled from the catalog's native schema.
package creature

// Record is the unified output shape for a creature lookup. It is built
// fresh on every request and never persisted.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsRare      bool   `json:"isRare"`
}
