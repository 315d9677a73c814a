package docs

import (
	"errors"
	"testing"
)

func TestNewCatalog_RejectsBadDefinitions(t *testing.T) {
	testCases := []struct {
		name string
		defs []DocumentRequirement
	}{
		{
			"duplicate id",
			[]DocumentRequirement{
				{ID: "doc_a", Name: "A", Category: CategoryIncome},
				{ID: "doc_a", Name: "A again", Category: CategoryIncome},
			},
		},
		{
			"empty id",
			[]DocumentRequirement{{Name: "No ID", Category: CategoryIncome}},
		},
		{
			"empty name",
			[]DocumentRequirement{{ID: "doc_a", Category: CategoryIncome}},
		},
		{
			"unknown category",
			[]DocumentRequirement{{ID: "doc_a", Name: "A", Category: "liabilities"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.defs); err == nil {
				t.Error("NewCatalog() should reject bad definitions")
			}
		})
	}
}

func TestCatalogGetMany(t *testing.T) {
	c, err := NewCatalog([]DocumentRequirement{
		{ID: "doc_a", Name: "A", Category: CategoryTransaction},
		{ID: "doc_b", Name: "B", Category: CategoryIncome},
	})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	// Same index order as the input ids.
	got, err := c.GetMany([]string{"doc_b", "doc_a"})
	if err != nil {
		t.Fatalf("GetMany() failed: %v", err)
	}
	if got[0].ID != "doc_b" || got[1].ID != "doc_a" {
		t.Errorf("GetMany() order = [%s %s], want [doc_b doc_a]", got[0].ID, got[1].ID)
	}

	// Any missing id fails the whole lookup.
	_, err = c.GetMany([]string{"doc_a", "doc_missing"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	// Spot-check a few stable ids from each category.
	for _, id := range []string{"doc_aps", "doc_condo_fee", "doc_t4_2yr", "doc_rrsp_stmt", "doc_gift_letter"} {
		if !c.Has(id) {
			t.Errorf("default catalog missing %s", id)
		}
	}
}

func TestCatalogAllSorted(t *testing.T) {
	all := DefaultCatalog().All()

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if categoryRank[prev.Category] > categoryRank[cur.Category] {
			t.Fatalf("All() category order violated at %d", i)
		}
		if prev.Category == cur.Category && prev.Name > cur.Name {
			t.Fatalf("All() name order violated at %d: %q after %q", i, cur.Name, prev.Name)
		}
	}
}
