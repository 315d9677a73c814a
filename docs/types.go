// Package docs implements the document requirement engine: it maps a
// borrower's questionnaire answers to classification tags and a
// deduplicated, stably ordered list of required supporting documents.
package docs

// Category groups document requirements for display and ordering.
// Categories sort in a fixed precedence; see sortRequirements.
type Category string

const (
	CategoryTransaction        Category = "transaction"
	CategoryProperty           Category = "property"
	CategoryIncome             Category = "income"
	CategoryNetWorth           Category = "net_worth"
	CategoryExistingProperties Category = "existing_properties"
)

// categoryRank defines the display precedence of categories.
// New categories must be slotted in here to participate in sorting.
var categoryRank = map[Category]int{
	CategoryTransaction:        1,
	CategoryProperty:           2,
	CategoryIncome:             3,
	CategoryNetWorth:           4,
	CategoryExistingProperties: 5,
}

// DocumentRequirement is a single required supporting document.
// Identity is by ID; display names may repeat across the catalog.
// The value is immutable once created and contains only plain fields so
// it can cross a persistence boundary unchanged.
type DocumentRequirement struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`
}

// TransactionType is the deal type selected on the questionnaire.
type TransactionType string

const (
	TransactionPurchaseResale   TransactionType = "purchase_resale"
	TransactionPurchaseNew      TransactionType = "purchase_new"
	TransactionRenewalRefinance TransactionType = "renewal_refinance"
)

// IsPurchase reports whether the transaction is a purchase (resale or
// new construction). Down-payment rules only apply to purchases.
func (t TransactionType) IsPurchase() bool {
	return t == TransactionPurchaseResale || t == TransactionPurchaseNew
}

// IncomeSource is one selected income source.
type IncomeSource string

const (
	IncomeEmployed     IncomeSource = "employed"
	IncomeSelfEmployed IncomeSource = "self_employed"
	IncomeRetired      IncomeSource = "retired"
	IncomeRental       IncomeSource = "rental"
	IncomeOther        IncomeSource = "other"
)

// SelfEmployedType refines the self-employed income source.
type SelfEmployedType string

const (
	SelfEmployedIncorporated   SelfEmployedType = "incorporated"
	SelfEmployedSoleProprietor SelfEmployedType = "sole_proprietor"
)

// OtherIncomeType is one selected "other income" sub-type.
type OtherIncomeType string

const (
	OtherIncomeChildCareBenefit OtherIncomeType = "child_care_benefit"
	OtherIncomeAlimony          OtherIncomeType = "alimony"
	OtherIncomeInvestment       OtherIncomeType = "investment_income"
	OtherIncomeDisability       OtherIncomeType = "disability"
	OtherIncomeSurvivorsPension OtherIncomeType = "survivors_pension"
	OtherIncomeMaternityLeave   OtherIncomeType = "maternity_leave"
)

// DownPaymentSource is one selected source of down-payment funds.
type DownPaymentSource string

const (
	DownPaymentSavings        DownPaymentSource = "savings"
	DownPaymentSaleOfProperty DownPaymentSource = "sale_of_property"
	DownPaymentGift           DownPaymentSource = "gift"
	DownPaymentRRSPHBP        DownPaymentSource = "rrsp_hbp"
	DownPaymentOther          DownPaymentSource = "other"
)

// NetWorthAccount is one selected asset account type.
type NetWorthAccount string

const (
	NetWorthRRSP          NetWorthAccount = "rrsp"
	NetWorthRDSP          NetWorthAccount = "rdsp"
	NetWorthSpousalRRSP   NetWorthAccount = "spousal_rrsp"
	NetWorthTFSA          NetWorthAccount = "tfsa"
	NetWorthFHSA          NetWorthAccount = "fhsa"
	NetWorthNonRegistered NetWorthAccount = "non_registered"
)

// Answers holds the questionnaire input the engine resolves against.
//
// Optional flags are pointers: nil means the question was not answered,
// which the engine treats the same as false. The engine never rejects
// missing optional fields; completeness validation belongs to the form.
//
// OtherPropertiesIsCondo is indexed parallel to NumberOfOtherProperties.
// The caller is responsible for keeping the two in sync; when they
// disagree the engine clamps to the shorter of the two (a missing index
// reads as "not a condo").
type Answers struct {
	TransactionType       TransactionType     `json:"transactionType"`
	IsCondo               *bool               `json:"isCondo"`
	SubjectPropertyRented *bool               `json:"subjectPropertyRented"`
	IncomeSources         []IncomeSource      `json:"incomeSources"`
	SelfEmployedType      SelfEmployedType    `json:"selfEmployedType"`
	OtherIncomeTypes      []OtherIncomeType   `json:"otherIncomeTypes"`
	DownPaymentSources    []DownPaymentSource `json:"downPaymentSources"`
	NetWorthAccounts      []NetWorthAccount   `json:"netWorthAccounts"`
	HasOtherProperties    *bool               `json:"hasOtherProperties"`

	NumberOfOtherProperties int    `json:"numberOfOtherProperties"`
	OtherPropertiesIsCondo  []bool `json:"otherPropertiesIsCondo"`

	// Free-text details carried through for display and export only.
	// They never influence which documents are required.
	OtherIncomeDetail      string `json:"otherIncomeDetail,omitempty"`
	DownPaymentOtherDetail string `json:"downPaymentOtherDetail,omitempty"`
}

// EngineResult is the engine's sole output: the derived classification
// tags and the resolved document requirement list.
type EngineResult struct {
	Tags      []string              `json:"tags"`
	Documents []DocumentRequirement `json:"documents"`
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
