package docs

import "fmt"

// propertyTemplate is one document generated per additional owned
// property. The index is suffixed into the generated id so documents for
// distinct properties never dedup into one.
type propertyTemplate struct {
	slug string
	name string
}

var otherPropertyTemplates = []propertyTemplate{
	{slug: "mortgage_stmt", name: "Mortgage Statement"},
	{slug: "property_tax", name: "Property Tax Statement"},
	{slug: "heating_costs", name: "Heating Costs"},
	{slug: "legal_description", name: "Legal Description"},
}

var otherPropertyCondoTemplate = propertyTemplate{slug: "condo_fee", name: "Condo Fee Statement"}

// ExpandOtherProperties generates one document group per additional
// property: four base documents for every property plus a condo fee
// statement for indices flagged condo.
//
// OtherPropertiesIsCondo may disagree with NumberOfOtherProperties when
// the form holds stale data; a missing index reads as "not a condo" and
// extra entries are ignored.
func ExpandOtherProperties(a *Answers) []DocumentRequirement {
	if a == nil || !boolValue(a.HasOtherProperties) || a.NumberOfOtherProperties <= 0 {
		return nil
	}

	n := a.NumberOfOtherProperties
	out := make([]DocumentRequirement, 0, n*(len(otherPropertyTemplates)+1))

	for i := 1; i <= n; i++ {
		for _, tpl := range otherPropertyTemplates {
			out = append(out, propertyDocument(tpl, i))
		}
		if i-1 < len(a.OtherPropertiesIsCondo) && a.OtherPropertiesIsCondo[i-1] {
			out = append(out, propertyDocument(otherPropertyCondoTemplate, i))
		}
	}

	return out
}

func propertyDocument(tpl propertyTemplate, index int) DocumentRequirement {
	return DocumentRequirement{
		ID:       fmt.Sprintf("doc_other_property_%d_%s", index, tpl.slug),
		Name:     fmt.Sprintf("%s (Property %d)", tpl.name, index),
		Category: CategoryExistingProperties,
	}
}
