package docs

// BuildTags derives the classification tags from the answers. Tags are
// a reporting artifact: document matching never reads them. The emission
// order below is fixed so identical answers always produce an identical
// tag list. Duplicate tags are permitted here; only the document list is
// duplicate-free.
func BuildTags(a *Answers) []string {
	if a == nil {
		return nil
	}

	var tags []string

	if a.TransactionType != "" {
		tags = append(tags, string(a.TransactionType))
	}

	if boolValue(a.IsCondo) {
		tags = append(tags, "condo")
	}

	if boolValue(a.SubjectPropertyRented) {
		tags = append(tags, "subject_property_rented")
	}

	for _, source := range a.IncomeSources {
		tags = append(tags, string(source))
	}

	if a.SelfEmployedType != "" {
		tags = append(tags, "self_employed_"+string(a.SelfEmployedType))
	}

	for _, incomeType := range a.OtherIncomeTypes {
		tags = append(tags, "other_income_"+string(incomeType))
	}

	for _, source := range a.DownPaymentSources {
		tags = append(tags, "dp_"+string(source))
	}

	for _, account := range a.NetWorthAccounts {
		tags = append(tags, string(account))
	}

	if boolValue(a.HasOtherProperties) {
		tags = append(tags, "has_other_properties")
	}

	return tags
}
