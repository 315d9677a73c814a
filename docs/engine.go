package docs

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// ruleCostLimit bounds CEL evaluation cost per rule so a pathological
// expression cannot run away.
const ruleCostLimit = 1_000_000

// Engine resolves questionnaire answers to classification tags and a
// required-document list. All rules are compiled at construction and the
// engine is immutable afterwards, so a single instance may be shared by
// any number of concurrent callers.
type Engine struct {
	catalog  *Catalog
	rules    []Rule
	env      *cel.Env
	programs map[string]cel.Program
}

// NewEngine compiles the rule table against the catalog. Any
// configuration error (bad rule id, expression that does not compile, a
// document id the catalog does not contain) fails construction; nothing
// is deferred to resolution time.
func NewEngine(catalog *Catalog, table []Rule) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New("catalog must not be nil")
	}
	if err := ValidateRules(table, catalog); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}

	env, err := newAnswersEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	en := &Engine{
		catalog:  catalog,
		rules:    table,
		env:      env,
		programs: make(map[string]cel.Program, len(table)),
	}

	for _, r := range table {
		prog, err := en.compile(r.Expression)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.ID, err)
		}
		en.programs[r.ID] = prog
	}

	return en, nil
}

// NewDefaultEngine builds an engine over the built-in catalog and rule
// table.
func NewDefaultEngine() (*Engine, error) {
	return NewEngine(DefaultCatalog(), DefaultRules())
}

// newAnswersEnv declares one CEL variable per answer field the rule
// table may condition on, plus the derived isPurchase flag. Facts built
// by celFacts always bind every variable, so evaluation is total.
func newAnswersEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("transactionType", cel.StringType),
		cel.Variable("isPurchase", cel.BoolType),
		cel.Variable("isCondo", cel.BoolType),
		cel.Variable("subjectPropertyRented", cel.BoolType),
		cel.Variable("hasOtherProperties", cel.BoolType),
		cel.Variable("selfEmployedType", cel.StringType),
		cel.Variable("incomeSources", cel.ListType(cel.StringType)),
		cel.Variable("otherIncomeTypes", cel.ListType(cel.StringType)),
		cel.Variable("downPaymentSources", cel.ListType(cel.StringType)),
		cel.Variable("netWorthAccounts", cel.ListType(cel.StringType)),
	)
}

func (en *Engine) compile(expression string) (cel.Program, error) {
	ast, issues := en.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	prog, err := en.env.Program(ast, cel.CostLimit(ruleCostLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return prog, nil
}

// Catalog returns the read-only catalog the engine resolves against.
func (en *Engine) Catalog() *Catalog {
	return en.catalog
}

// Resolve evaluates every rule against the answers and returns the
// deduplicated, category-ordered document list. Missing optional answer
// fields never fail resolution; the only error paths are a nil argument
// and configuration faults.
func (en *Engine) Resolve(answers *Answers) ([]DocumentRequirement, error) {
	if answers == nil {
		return nil, errors.New("answers must not be nil")
	}

	facts := celFacts(answers)

	// Insertion-ordered, id-unique accumulator. First write per id wins;
	// the final ordering is imposed by sortRequirements regardless.
	seen := make(map[string]struct{})
	var out []DocumentRequirement

	for _, r := range en.rules {
		prog := en.programs[r.ID]

		val, _, err := prog.Eval(facts)
		if err != nil {
			// Facts are total, so this can only be a broken expression.
			return nil, fmt.Errorf("failed to evaluate rule %s: %w", r.ID, err)
		}
		matched, ok := val.Value().(bool)
		if !ok || !matched {
			continue
		}

		reqs, err := en.catalog.GetMany(r.DocumentIDs)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.ID, err)
		}
		for _, d := range reqs {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			seen[d.ID] = struct{}{}
			out = append(out, d)
		}
	}

	// Per-property generated ids carry an index suffix, so distinct
	// properties never collapse in the dedup step.
	for _, d := range ExpandOtherProperties(answers) {
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}
		out = append(out, d)
	}

	sortRequirements(out)
	return out, nil
}

// Run resolves tags and documents from one answers snapshot. The caller
// must treat answers as read-only for the duration of the call so both
// outputs derive from the same state.
func (en *Engine) Run(answers *Answers) (*EngineResult, error) {
	if answers == nil {
		return nil, errors.New("answers must not be nil")
	}

	documents, err := en.Resolve(answers)
	if err != nil {
		return nil, err
	}

	return &EngineResult{
		Tags:      BuildTags(answers),
		Documents: documents,
	}, nil
}

// celFacts flattens typed answers to the CEL variable bindings declared
// by newAnswersEnv. Every variable is always bound: nil flags read as
// false and nil selections as empty lists, so an unanswered question can
// never surface as an evaluation error.
func celFacts(a *Answers) map[string]any {
	return map[string]any{
		"transactionType":       string(a.TransactionType),
		"isPurchase":            a.TransactionType.IsPurchase(),
		"isCondo":               boolValue(a.IsCondo),
		"subjectPropertyRented": boolValue(a.SubjectPropertyRented),
		"hasOtherProperties":    boolValue(a.HasOtherProperties),
		"selfEmployedType":      string(a.SelfEmployedType),
		"incomeSources":         stringSlice(a.IncomeSources),
		"otherIncomeTypes":      stringSlice(a.OtherIncomeTypes),
		"downPaymentSources":    stringSlice(a.DownPaymentSources),
		"netWorthAccounts":      stringSlice(a.NetWorthAccounts),
	}
}

func stringSlice[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
