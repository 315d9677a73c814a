package docs

import (
	"fmt"
	"sort"
)

// NotFoundError reports a lookup for a document id the catalog does not
// contain. A rule referencing a missing id is a configuration error, not
// a user-facing condition; NewEngine surfaces it at construction time.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %s not found in catalog", e.ID)
}

// Catalog is the immutable registry of every document requirement the
// rule table may reference. It is loaded once at process start and never
// mutated, so it is safe for concurrent readers without coordination.
type Catalog struct {
	byID  map[string]DocumentRequirement
	order []string
}

// NewCatalog builds a catalog from definitions. Duplicate ids and
// entries with missing fields are rejected.
func NewCatalog(defs []DocumentRequirement) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]DocumentRequirement, len(defs)),
		order: make([]string, 0, len(defs)),
	}

	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has empty id", d.Name)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("catalog entry %s has empty name", d.ID)
		}
		if _, ok := categoryRank[d.Category]; !ok {
			return nil, fmt.Errorf("catalog entry %s has unknown category %q", d.ID, d.Category)
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, fmt.Errorf("catalog entry %s defined twice", d.ID)
		}
		c.byID[d.ID] = d
		c.order = append(c.order, d.ID)
	}

	return c, nil
}

// Get returns the document requirement for id.
func (c *Catalog) Get(id string) (DocumentRequirement, error) {
	d, ok := c.byID[id]
	if !ok {
		return DocumentRequirement{}, &NotFoundError{ID: id}
	}
	return d, nil
}

// GetMany returns the requirements for ids in the same index order.
// Any missing id fails the whole lookup.
func (c *Catalog) GetMany(ids []string) ([]DocumentRequirement, error) {
	out := make([]DocumentRequirement, 0, len(ids))
	for _, id := range ids {
		d, err := c.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Has reports whether the catalog contains id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// All returns every definition sorted by category precedence and then
// name, the same ordering resolution output uses.
func (c *Catalog) All() []DocumentRequirement {
	out := make([]DocumentRequirement, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	sortRequirements(out)
	return out
}

// sortRequirements orders requirements by category precedence, then
// lexicographically by name, with id as the final tiebreaker so the
// ordering is total even when display names repeat.
func sortRequirements(reqs []DocumentRequirement) {
	sort.SliceStable(reqs, func(i, j int) bool {
		ri, rj := categoryRank[reqs[i].Category], categoryRank[reqs[j].Category]
		if ri != rj {
			return ri < rj
		}
		if reqs[i].Name != reqs[j].Name {
			return reqs[i].Name < reqs[j].Name
		}
		return reqs[i].ID < reqs[j].ID
	})
}
