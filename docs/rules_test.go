package docs

import "testing"

func validationCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]DocumentRequirement{
		{ID: "doc_a", Name: "A", Category: CategoryTransaction},
	})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

func TestValidateRules(t *testing.T) {
	catalog := validationCatalog(t)

	testCases := []struct {
		name    string
		table   []Rule
		wantErr bool
	}{
		{
			"valid",
			[]Rule{{ID: "r1", Name: "R1", Expression: `isCondo`, DocumentIDs: []string{"doc_a"}}},
			false,
		},
		{"empty table", nil, true},
		{
			"empty id",
			[]Rule{{Name: "R1", Expression: `isCondo`, DocumentIDs: []string{"doc_a"}}},
			true,
		},
		{
			"id with uppercase",
			[]Rule{{ID: "Rule1", Name: "R1", Expression: `isCondo`, DocumentIDs: []string{"doc_a"}}},
			true,
		},
		{
			"duplicate id",
			[]Rule{
				{ID: "r1", Name: "R1", Expression: `isCondo`, DocumentIDs: []string{"doc_a"}},
				{ID: "r1", Name: "R2", Expression: `isCondo`, DocumentIDs: []string{"doc_a"}},
			},
			true,
		},
		{
			"empty expression",
			[]Rule{{ID: "r1", Name: "R1", DocumentIDs: []string{"doc_a"}}},
			true,
		},
		{
			"no documents",
			[]Rule{{ID: "r1", Name: "R1", Expression: `isCondo`}},
			true,
		},
		{
			"unknown document",
			[]Rule{{ID: "r1", Name: "R1", Expression: `isCondo`, DocumentIDs: []string{"doc_b"}}},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRules(tc.table, catalog)
			if tc.wantErr && err == nil {
				t.Error("ValidateRules() should fail")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateRules() failed: %v", err)
			}
		})
	}
}

// Every built-in rule must reference only built-in catalog documents and
// compile against the answers environment.
func TestDefaultRulesAgainstDefaultCatalog(t *testing.T) {
	if err := ValidateRules(DefaultRules(), DefaultCatalog()); err != nil {
		t.Fatalf("default rule table is invalid: %v", err)
	}

	if _, err := NewEngine(DefaultCatalog(), DefaultRules()); err != nil {
		t.Fatalf("default rule table does not compile: %v", err)
	}
}
