package docs

// Built-in catalog and rule table. Document names match the broker's
// checklist spreadsheet exactly, typos included ("Amendements",
// "Interem"); ids are stable and never derived from names.

const lenderWindowNote = "BMO, SCOTIA (12 months) | Other Lenders (90 days)"

func defaultDocuments() []DocumentRequirement {
	return []DocumentRequirement{
		// Transaction: purchase resale
		{ID: "doc_aps", Name: "Agreement of Purchase of Sale", Category: CategoryTransaction},
		{ID: "doc_mls", Name: "MLS Listing", Category: CategoryTransaction},
		{ID: "doc_amendments", Name: "All Amendments", Category: CategoryTransaction},

		// Transaction: purchase new construction
		{ID: "doc_amendments_waivers", Name: "All Amendements and Waivers", Category: CategoryTransaction},
		{ID: "doc_interim_adjustments", Name: "Interem Statement of Adjustments", Category: CategoryTransaction},
		{ID: "doc_deposits", Name: "Copy of all deposits", Category: CategoryTransaction},

		// Transaction: down payment
		{ID: "doc_dp_90day", Name: "Down Payment (90 Day Bank Statement)", Category: CategoryTransaction},
		{ID: "doc_dp_bank_stmt", Name: "Down Payment (Bank Statement)", Category: CategoryTransaction},
		{ID: "doc_gift_letter", Name: "Gift Letter", Category: CategoryTransaction},
		{ID: "doc_sale_agreement", Name: "Sale Agreement (Existing Property)", Category: CategoryTransaction},
		{ID: "doc_sale_mortgage_stmt", Name: "Mortgage Statement (Property Being Sold)", Category: CategoryTransaction},
		{ID: "doc_sale_insurance", Name: "Insurance Policy (Property Being Sold)", Category: CategoryTransaction},
		{ID: "doc_sale_tax_bill", Name: "Tax Bill (Property Being Sold)", Category: CategoryTransaction},
		{ID: "doc_hbp_withdrawal", Name: "HBP Withdrawal Confirmation", Category: CategoryTransaction},
		{ID: "doc_hbp_rrsp_stmt", Name: "RRSP Statement (90 Days)", Category: CategoryTransaction},

		// Transaction: renewal / refinance
		{ID: "doc_mortgage_stmt", Name: "Mortgage Statements", Category: CategoryTransaction},
		{ID: "doc_property_tax", Name: "Property Tax Statements", Category: CategoryTransaction},

		// Property
		{ID: "doc_condo_fee", Name: "Condo Fee Confirmation", Category: CategoryProperty},
		{ID: "doc_lease_bank_stmt", Name: "Lease Agreement & Bank Statements", Category: CategoryProperty},

		// Income: employed
		{ID: "doc_t4_2yr", Name: "T4 (Past 2 Years)", Category: CategoryIncome},
		{ID: "doc_noas_2yr", Name: "NOAs (Past 2 Years)", Category: CategoryIncome},
		{ID: "doc_job_letter", Name: "Job Letter", Category: CategoryIncome},
		{ID: "doc_paystubs", Name: "Paystubs (Most Recent)", Category: CategoryIncome},

		// Income: retired
		{ID: "doc_t4a_retired", Name: "T4A (Most Recent) - CPP, OAS, Pension", Category: CategoryIncome},
		{ID: "doc_t1_most_recent", Name: "T1 General (Most Recent)", Category: CategoryIncome},
		{ID: "doc_noa_most_recent", Name: "NOA (Most Recent)", Category: CategoryIncome},
		{ID: "doc_bank_stmt_retired", Name: "Bank Statement", Category: CategoryIncome},

		// Income: self-employed (common)
		{ID: "doc_t1_2yr", Name: "T1 General (Past 2 Years)", Category: CategoryIncome},
		{ID: "doc_business_bank_stmt", Name: "Business Bank Statements (12 Months)", Category: CategoryIncome},

		// Income: self-employed (incorporated)
		{ID: "doc_articles_inc", Name: "Articles of Incorporation", Category: CategoryIncome},
		{ID: "doc_t2_2yr", Name: "T2 (Past 2 Years)", Category: CategoryIncome},
		{ID: "doc_financial_stmt", Name: "Financial Statements (Past 2 Years) - CPA Prep", Category: CategoryIncome},

		// Income: self-employed (sole proprietor)
		{ID: "doc_business_license", Name: "Business License", Category: CategoryIncome},

		// Income: rental
		{ID: "doc_lease_agreement", Name: "Lease Agreement", Category: CategoryIncome},
		{ID: "doc_bank_statements_rental", Name: "Bank Statements", Category: CategoryIncome},
		{ID: "doc_first_last_deposits", Name: "First & Last Deposits (New Lease)", Category: CategoryIncome},
		{ID: "doc_t1_generals_rental", Name: "T1 Generals", Category: CategoryIncome},

		// Income: other income types
		{ID: "doc_child_care_benefit", Name: "Child Care Benefit (CRA Letter & Bank Statements)", Category: CategoryIncome},
		{ID: "doc_alimony", Name: "Alimony (Bank Statements & Separation Agreement)", Category: CategoryIncome},
		{ID: "doc_investment_income", Name: "Investment Income (2 Years Full T1 Generals or T5s and NOAs)", Category: CategoryIncome},
		{ID: "doc_disability", Name: "Disability Income (T1 General, T4A, Letter)", Category: CategoryIncome},
		{ID: "doc_survivors_pension", Name: "Survivor's Pension (T1 General / T4A / Letter)", Category: CategoryIncome},
		{ID: "doc_maternity_leave", Name: "Maternity Leave Income (Job Letter w Return Date & last full paystub before Leave)", Category: CategoryIncome},

		// Net worth
		{ID: "doc_rrsp_stmt", Name: "RRSP Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
		{ID: "doc_rdsp_stmt", Name: "RDSP Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
		{ID: "doc_spousal_rrsp_stmt", Name: "Spousal RRSP Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
		{ID: "doc_tfsa_stmt", Name: "TFSA Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
		{ID: "doc_fhsa_stmt", Name: "FHSA Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
		{ID: "doc_non_registered_stmt", Name: "Non-Registered Account Statement", Category: CategoryNetWorth, Note: lenderWindowNote},
	}
}

// DefaultCatalog returns the built-in document catalog. The definitions
// are static, so construction cannot fail.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultDocuments())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultRules returns the built-in rule table. Each entry is evaluated
// independently against the answers; conditions are not mutually
// exclusive and co-firing rules simply merge their documents (first
// write per id wins).
func DefaultRules() []Rule {
	return []Rule{
		// Transaction type groups: exactly one fires per deal.
		{
			ID:          "purchase_resale_always",
			Name:        "Purchase resale base set",
			Expression:  `transactionType == "purchase_resale"`,
			DocumentIDs: []string{"doc_aps", "doc_mls", "doc_amendments"},
		},
		{
			ID:          "purchase_new_always",
			Name:        "New construction base set",
			Expression:  `transactionType == "purchase_new"`,
			DocumentIDs: []string{"doc_aps", "doc_amendments_waivers", "doc_interim_adjustments", "doc_deposits"},
		},
		{
			ID:          "renewal_refinance_always",
			Name:        "Renewal/refinance base set",
			Expression:  `transactionType == "renewal_refinance"`,
			DocumentIDs: []string{"doc_mortgage_stmt", "doc_property_tax"},
		},

		// Down payment groups: purchases only. Stale selections on a
		// renewal/refinance are ignored because isPurchase gates every rule.
		{
			ID:          "dp_statement_resale",
			Name:        "Down payment history (resale)",
			Expression:  `transactionType == "purchase_resale" && downPaymentSources.exists(s, s == "savings" || s == "other")`,
			DocumentIDs: []string{"doc_dp_90day"},
		},
		{
			ID:          "dp_statement_new",
			Name:        "Down payment history (new construction)",
			Expression:  `transactionType == "purchase_new" && downPaymentSources.exists(s, s == "savings" || s == "other")`,
			DocumentIDs: []string{"doc_dp_bank_stmt"},
		},
		{
			ID:          "dp_gift",
			Name:        "Gifted down payment",
			Expression:  `isPurchase && "gift" in downPaymentSources`,
			DocumentIDs: []string{"doc_gift_letter"},
		},
		{
			ID:          "dp_sale_of_property",
			Name:        "Down payment from sale of existing property",
			Expression:  `isPurchase && "sale_of_property" in downPaymentSources`,
			DocumentIDs: []string{"doc_sale_agreement", "doc_sale_mortgage_stmt", "doc_sale_insurance", "doc_sale_tax_bill"},
		},
		{
			ID:          "dp_rrsp_hbp",
			Name:        "Down payment from RRSP Home Buyers' Plan",
			Expression:  `isPurchase && "rrsp_hbp" in downPaymentSources`,
			DocumentIDs: []string{"doc_hbp_withdrawal", "doc_hbp_rrsp_stmt"},
		},

		// Property attributes.
		{
			ID:          "property_condo",
			Name:        "Condo",
			Expression:  `isCondo`,
			DocumentIDs: []string{"doc_condo_fee"},
		},
		{
			ID:          "property_subject_rented",
			Name:        "Subject property rented",
			Expression:  `isPurchase && subjectPropertyRented`,
			DocumentIDs: []string{"doc_lease_bank_stmt"},
		},

		// Income sources.
		{
			ID:          "income_employed",
			Name:        "Employed income",
			Expression:  `"employed" in incomeSources`,
			DocumentIDs: []string{"doc_t4_2yr", "doc_noas_2yr", "doc_job_letter", "doc_paystubs"},
		},
		{
			ID:          "income_retired",
			Name:        "Retirement income",
			Expression:  `"retired" in incomeSources`,
			DocumentIDs: []string{"doc_t4a_retired", "doc_t1_most_recent", "doc_noa_most_recent", "doc_bank_stmt_retired"},
		},
		{
			ID:          "income_rental",
			Name:        "Rental income",
			Expression:  `"rental" in incomeSources`,
			DocumentIDs: []string{"doc_lease_agreement", "doc_bank_statements_rental", "doc_first_last_deposits", "doc_t1_generals_rental"},
		},
		{
			ID:          "income_self_employed_always",
			Name:        "Self-employed common set",
			Expression:  `"self_employed" in incomeSources`,
			DocumentIDs: []string{"doc_t1_2yr", "doc_noas_2yr"},
		},
		{
			ID:          "income_self_employed_incorporated",
			Name:        "Self-employed (incorporated)",
			Expression:  `"self_employed" in incomeSources && selfEmployedType == "incorporated"`,
			DocumentIDs: []string{"doc_articles_inc", "doc_t2_2yr", "doc_financial_stmt", "doc_business_bank_stmt"},
		},
		{
			ID:          "income_self_employed_sole_proprietor",
			Name:        "Self-employed (sole proprietor)",
			Expression:  `"self_employed" in incomeSources && selfEmployedType == "sole_proprietor"`,
			DocumentIDs: []string{"doc_business_license", "doc_business_bank_stmt"},
		},

		// Other income: only the sub-types the borrower selected.
		{
			ID:          "other_income_child_care_benefit",
			Name:        "Other income: child care benefit",
			Expression:  `"other" in incomeSources && "child_care_benefit" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_child_care_benefit"},
		},
		{
			ID:          "other_income_alimony",
			Name:        "Other income: alimony",
			Expression:  `"other" in incomeSources && "alimony" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_alimony"},
		},
		{
			ID:          "other_income_investment",
			Name:        "Other income: investment income",
			Expression:  `"other" in incomeSources && "investment_income" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_investment_income"},
		},
		{
			ID:          "other_income_disability",
			Name:        "Other income: disability",
			Expression:  `"other" in incomeSources && "disability" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_disability"},
		},
		{
			ID:          "other_income_survivors_pension",
			Name:        "Other income: survivor's pension",
			Expression:  `"other" in incomeSources && "survivors_pension" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_survivors_pension"},
		},
		{
			ID:          "other_income_maternity_leave",
			Name:        "Other income: maternity leave",
			Expression:  `"other" in incomeSources && "maternity_leave" in otherIncomeTypes`,
			DocumentIDs: []string{"doc_maternity_leave"},
		},

		// Net worth accounts: 1:1 statement per selected account type.
		{
			ID:          "net_worth_rrsp",
			Name:        "RRSP statement",
			Expression:  `"rrsp" in netWorthAccounts`,
			DocumentIDs: []string{"doc_rrsp_stmt"},
		},
		{
			ID:          "net_worth_rdsp",
			Name:        "RDSP statement",
			Expression:  `"rdsp" in netWorthAccounts`,
			DocumentIDs: []string{"doc_rdsp_stmt"},
		},
		{
			ID:          "net_worth_spousal_rrsp",
			Name:        "Spousal RRSP statement",
			Expression:  `"spousal_rrsp" in netWorthAccounts`,
			DocumentIDs: []string{"doc_spousal_rrsp_stmt"},
		},
		{
			ID:          "net_worth_tfsa",
			Name:        "TFSA statement",
			Expression:  `"tfsa" in netWorthAccounts`,
			DocumentIDs: []string{"doc_tfsa_stmt"},
		},
		{
			ID:          "net_worth_fhsa",
			Name:        "FHSA statement",
			Expression:  `"fhsa" in netWorthAccounts`,
			DocumentIDs: []string{"doc_fhsa_stmt"},
		},
		{
			ID:          "net_worth_non_registered",
			Name:        "Non-registered account statement",
			Expression:  `"non_registered" in netWorthAccounts`,
			DocumentIDs: []string{"doc_non_registered_stmt"},
		},
	}
}
