// Package catalog provides the static program documentation catalog.
//
// The catalog is embedded content shipped with the binary: a mapping from
// program id to the documents needed to apply, each flagged required or
// recommended. The screening core looks entries up by program id and
// treats a missing entry as an empty checklist, never an error - many
// programs have no checklist yet.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/benefitpath/screener/internal/types"
)

//go:embed data/documents.json
var documentsJSON []byte

// document is one catalog entry line as stored in the data file.
type document struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Catalog maps program ids to document checklists.
// Immutable after Load; safe for concurrent lookups.
type Catalog struct {
	entries map[string]types.DocumentChecklist
}

// Load parses the embedded catalog, splitting each program's document list
// by its required flag.
func Load() (*Catalog, error) {
	return parse(documentsJSON)
}

// parse builds a Catalog from raw catalog JSON. Split out for tests.
func parse(data []byte) (*Catalog, error) {
	var raw map[string][]document
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse documentation catalog: %w", err)
	}

	entries := make(map[string]types.DocumentChecklist, len(raw))
	for programID, docs := range raw {
		checklist := types.DocumentChecklist{Required: []string{}, Recommended: []string{}}
		for _, d := range docs {
			if d.Required {
				checklist.Required = append(checklist.Required, d.Name)
			} else {
				checklist.Recommended = append(checklist.Recommended, d.Name)
			}
		}
		// Stable document order regardless of data file ordering.
		sort.Strings(checklist.Required)
		sort.Strings(checklist.Recommended)
		entries[programID] = checklist
	}

	return &Catalog{entries: entries}, nil
}

// Documentation returns the checklist for a program id.
// ok is false for programs without a catalog entry.
func (c *Catalog) Documentation(programID string) (types.DocumentChecklist, bool) {
	checklist, ok := c.entries[programID]
	return checklist, ok
}

// Programs returns the sorted list of program ids with catalog entries.
func (c *Catalog) Programs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
