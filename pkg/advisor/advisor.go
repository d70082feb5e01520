package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/nsxbet/sqlcheck/pkg/config"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

// RuleType is the identifier of an anti-pattern rule.
type RuleType string

const (
	// RuleSelectStar flags 'SELECT *' in queries.
	RuleSelectStar RuleType = "query.select-star"
	// RuleMultiValuedAttribute flags id lists stored in a text column.
	RuleMultiValuedAttribute RuleType = "creation.multi-valued-attribute"
	// RuleRecursiveDependency flags tables that reference themselves.
	RuleRecursiveDependency RuleType = "creation.recursive-dependency"
	// RulePrimaryKeyExists requires a primary key on created tables.
	RulePrimaryKeyExists RuleType = "creation.primary-key-exists"
	// RuleGenericPrimaryKey flags columns named just 'id'.
	RuleGenericPrimaryKey RuleType = "creation.generic-primary-key"
	// RuleForeignKeyExists requires foreign keys on created tables.
	RuleForeignKeyExists RuleType = "creation.foreign-key-exists"
	// RuleImpreciseDataType flags FLOAT/REAL/DOUBLE PRECISION columns.
	RuleImpreciseDataType RuleType = "creation.imprecise-data-type"
)

// Context is the per-statement context handed to every rule check.
//
// The statement text and configuration are read-only; a rule must never
// mutate either.
type Context struct {
	Config *config.Config

	// Rule carries the effective type and level resolved from config.
	Rule *types.CheckRule

	// Statement is a single SQL statement, already split from the input.
	Statement string

	// Filename is the source the statement came from, "" when unknown.
	Filename string

	// BaseLine is the zero-based line of the statement in the input.
	BaseLine int
}

// Advisor is the interface every rule implements.
type Advisor interface {
	Check(ctx context.Context, checkCtx Context) ([]*types.Advice, error)
}

// Rule describes one statically defined anti-pattern check. Most rules
// are pure data: a compiled pattern plus reporting metadata, evaluated
// by a shared pattern advisor. Rules whose pattern depends on the
// statement itself register a hand-written Advisor instead.
type Rule struct {
	Type    RuleType
	Title   string
	Message string

	// Pattern is the regular expression source, compiled once at
	// registration time.
	Pattern string

	Level       types.RuleLevel
	PatternType types.PatternType
	Code        Code

	// MatchIsViolation selects the polarity: true means a match IS the
	// violation, false means the ABSENCE of a match is the violation.
	MatchIsViolation bool

	// CreateOnly gates the rule on IsCreateStatement before any
	// pattern evaluation happens.
	CreateOnly bool
}

var (
	advisorMu sync.RWMutex
	advisors  = make(map[RuleType]Advisor)
	defaults  = make(map[RuleType]types.RuleLevel)
)

// Register makes an advisor available under the given rule type.
// If Register is called twice with the same type or if advisor is nil,
// it panics.
func Register(ruleType RuleType, defaultLevel types.RuleLevel, a Advisor) {
	advisorMu.Lock()
	defer advisorMu.Unlock()
	if a == nil {
		panic("advisor: Register advisor is nil")
	}
	if _, dup := advisors[ruleType]; dup {
		panic(fmt.Sprintf("advisor: Register called twice for advisor %v", ruleType))
	}
	advisors[ruleType] = a
	defaults[ruleType] = defaultLevel
}

// RegisterPattern registers a data-defined rule behind the shared
// pattern advisor. A pattern that fails to compile is a configuration
// error for that rule alone: it is reported once here and the rule is
// skipped, leaving every other rule untouched.
func RegisterPattern(rule Rule) {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		slog.Error("invalid rule pattern, rule skipped",
			"rule", rule.Type, "pattern", rule.Pattern, "error", err)
		return
	}
	Register(rule.Type, rule.Level, &patternAdvisor{rule: rule, re: re})
}

// Check runs a single registered rule and returns its advices.
func Check(ctx context.Context, ruleType RuleType, checkCtx Context) (adviceList []*types.Advice, err error) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panicErr, ok := panicErr.(error)
			if !ok {
				panicErr = errors.Errorf("%v", panicErr)
			}
			err = errors.Errorf("advisor check PANIC RECOVER, type: %v, err: %v", ruleType, panicErr)
			slog.Error("advisor check PANIC RECOVER", "error", panicErr)
		}
	}()

	advisorMu.RLock()
	a, ok := advisors[ruleType]
	advisorMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("advisor: unknown advisor %v", ruleType)
	}

	return a.Check(ctx, checkCtx)
}

// Types returns every registered rule type in a stable order.
func Types() []RuleType {
	advisorMu.RLock()
	defer advisorMu.RUnlock()
	out := make([]RuleType, 0, len(advisors))
	for t := range advisors {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultLevel returns the default level a rule was registered with.
func DefaultLevel(ruleType RuleType) types.RuleLevel {
	advisorMu.RLock()
	defer advisorMu.RUnlock()
	if level, ok := defaults[ruleType]; ok {
		return level
	}
	return types.RuleLevel_LEVEL_UNSPECIFIED
}

// NewStatusByRuleLevel maps a configured rule level to an advice status.
func NewStatusByRuleLevel(level types.RuleLevel) (types.Advice_Status, error) {
	switch level {
	case types.RuleLevel_ERROR:
		return types.Advice_ERROR, nil
	case types.RuleLevel_WARNING:
		return types.Advice_WARNING, nil
	}
	return types.Advice_STATUS_UNSPECIFIED, errors.Errorf("unexpected rule level type: %v", level)
}

// patternAdvisor evaluates one data-defined Rule via CheckPattern.
type patternAdvisor struct {
	rule Rule
	re   *regexp.Regexp
}

func (a *patternAdvisor) Check(_ context.Context, checkCtx Context) ([]*types.Advice, error) {
	if a.rule.CreateOnly && !IsCreateStatement(checkCtx.Statement) {
		return nil, nil
	}
	return CheckPattern(checkCtx, a.re, a.rule.PatternType, a.rule.Code,
		a.rule.Title, a.rule.Message, a.rule.MatchIsViolation), nil
}

// CheckPattern is the single generic matching primitive every rule
// delegates to. It runs one unanchored search of pattern over the
// statement; with matchIsViolation true a match is the violation, with
// matchIsViolation false the absence of a match is. A violation that
// clears the configured minimum severity yields exactly one advice.
func CheckPattern(
	checkCtx Context,
	pattern *regexp.Regexp,
	patternType types.PatternType,
	code Code,
	title string,
	message string,
	matchIsViolation bool,
) []*types.Advice {
	found := pattern.MatchString(checkCtx.Statement)
	if found != matchIsViolation {
		return nil
	}

	status, err := NewStatusByRuleLevel(checkCtx.Rule.Level)
	if err != nil {
		return nil
	}
	if !checkCtx.Config.ShouldReport(status) {
		return nil
	}

	content := title
	if checkCtx.Config.Verbose {
		content = fmt.Sprintf("%s\n%s", title, message)
	}

	return []*types.Advice{
		{
			Status:        status,
			Code:          code.Int32(),
			Type:          checkCtx.Rule.Type,
			Title:         title,
			Content:       content,
			PatternType:   patternType,
			Statement:     checkCtx.Statement,
			StartPosition: &types.Position{Line: int32(checkCtx.BaseLine)},
		},
	}
}
