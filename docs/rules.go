package docs

import (
	"fmt"
	"regexp"
)

// Rule associates a trigger condition with the catalog documents it
// requires. The condition is a CEL predicate over the answer variables
// declared by the engine environment; it is compiled once at engine
// construction and evaluated independently of every other rule.
//
// Per-entity expansion (the existing-properties group) is deliberately
// not expressed here: it generates ids procedurally and would pollute
// the catalog with unbounded entries. See ExpandOtherProperties.
type Rule struct {
	ID          string
	Name        string
	Expression  string
	DocumentIDs []string
}

var ruleIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateRules checks a rule table against a catalog before the engine
// compiles it: ids must be unique well-formed identifiers, expressions
// non-empty, and every referenced document id must exist. A failure here
// is a configuration error and should abort startup.
func ValidateRules(table []Rule, catalog *Catalog) error {
	if len(table) == 0 {
		return fmt.Errorf("rule table is empty")
	}

	seen := make(map[string]struct{}, len(table))
	for _, r := range table {
		if r.ID == "" {
			return fmt.Errorf("rule %q has empty id", r.Name)
		}
		if !ruleIDPattern.MatchString(r.ID) {
			return fmt.Errorf("rule id %q must match %s", r.ID, ruleIDPattern)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("rule id %s defined twice", r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.Expression == "" {
			return fmt.Errorf("rule %s has empty expression", r.ID)
		}
		if len(r.DocumentIDs) == 0 {
			return fmt.Errorf("rule %s requires no documents", r.ID)
		}
		for _, id := range r.DocumentIDs {
			if !catalog.Has(id) {
				return fmt.Errorf("rule %s references unknown document: %w", r.ID, &NotFoundError{ID: id})
			}
		}
	}

	return nil
}
