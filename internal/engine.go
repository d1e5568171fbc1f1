package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/nolint"
	tt "github.com/cssverse/csslin/internal/types"
)

// RuleParseError reports a recoverable stylesheet syntax error.
const RuleParseError = "parse-error"

// RuleEncodingError reports a file that was not valid UTF-8.
const RuleEncodingError = "encoding-error"

// RuleInternalError reports a rule implementation that panicked. The
// failure is isolated: other rules and files are unaffected.
const RuleInternalError = "rule-internal-error"

// RuleIOError reports a file that could not be read. The file is
// skipped; the run continues with the remaining inputs.
const RuleIOError = "io-error"

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule

	watcher *watcher
}

// Define the ruleConstructor type
type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"indentation":            NewIndentationRule,
	"trailing-whitespace":    NewTrailingWhitespaceRule,
	"max-line-length":        NewMaxLineLengthRule,
	"brace-placement":        NewBracePlacementRule,
	"declaration-separation": NewDeclarationSeparationRule,
	"hex-color":              NewHexColorRule,
	"quote-style":            NewQuoteStyleRule,
	"zero-unit":              NewZeroUnitRule,
	"declaration-order":      NewDeclarationOrderRule,
	"id-selector":            NewIDSelectorRule,
	"qualified-selector":     NewQualifiedSelectorRule,
	"important":              NewImportantRule,
	"naming-convention":      NewNamingConventionRule,
	"max-nesting-depth":      NewMaxNestingDepthRule,
}

// AllRuleNames returns the registered rule identifiers, sorted.
func AllRuleNames() []string {
	names := make([]string, 0, len(allRuleConstructors))
	for name := range allRuleConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEngine creates a lint engine with the default rules, overlaid
// with the given per-rule configuration.
func NewEngine(configRules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{rules: make(map[string]LintRule)}
	if err := engine.applyRules(configRules); err != nil {
		return nil, err
	}
	return engine, nil
}

func (e *Engine) applyRules(configRules map[string]tt.ConfigRule) error {
	for name, newRule := range allRuleConstructors {
		e.rules[name] = newRule()
	}

	for name, cfg := range configRules {
		rule, ok := e.rules[name]
		if !ok {
			// unknown rule names are reported by the config loader
			continue
		}
		if cfg.Severity != nil {
			rule.SetSeverity(*cfg.Severity)
			if *cfg.Severity == tt.SeverityOff {
				e.IgnoreRule(name)
			}
		}
		if len(cfg.Options) == 0 {
			continue
		}
		configurable, ok := rule.(ConfigurableRule)
		if !ok {
			return fmt.Errorf("rule %q does not accept options", name)
		}
		if err := configurable.Configure(cfg.Options); err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
	}
	return nil
}

// Rules returns the registered rules sorted by name.
func (e *Engine) Rules() []LintRule {
	out := make([]LintRule, 0, len(e.rules))
	for _, name := range AllRuleNames() {
		out = append(out, e.rules[name])
	}
	return out
}

// Run applies all lint rules to the given file and returns a slice of
// Issues. A file that cannot be read returns an error; everything else
// is reported through issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isPathIgnored(filename) {
		return nil, nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	doc := css.ParseBytes(filename, content)
	return e.lintDocument(doc), nil
}

// RunSource applies all lint rules to raw source bytes.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	doc := css.ParseBytes("", source)
	return e.lintDocument(doc), nil
}

func (e *Engine) lintDocument(doc *css.Document) []tt.Issue {
	allIssues := e.structuralIssues(doc)
	nolintMgr := nolint.ParseComments(doc)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, rule := range e.rules {
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] || r.Severity() == tt.SeverityOff {
				return
			}
			if !doc.EncodingValid {
				if _, ok := r.(LineBasedRule); !ok {
					return
				}
			}
			issues := e.checkIsolated(r, doc)
			filtered := filterSuppressed(issues, nolintMgr)

			mu.Lock()
			allIssues = append(allIssues, filtered...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	return allIssues
}

// checkIsolated runs one rule, converting a panic into a
// rule-internal-error issue so a broken rule cannot take down the run.
func (e *Engine) checkIsolated(r LintRule, doc *css.Document) (issues []tt.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			issues = []tt.Issue{{
				Rule:     RuleInternalError,
				Filename: doc.Filename,
				Message:  fmt.Sprintf("rule %q failed: %v", r.Name(), rec),
				Start:    tt.Position{Line: 1, Column: 1},
				End:      tt.Position{Line: 1, Column: 1},
				Severity: tt.SeverityWarning,
			}}
		}
	}()
	issues, err := r.Check(doc)
	if err != nil {
		return []tt.Issue{{
			Rule:     RuleInternalError,
			Filename: doc.Filename,
			Message:  fmt.Sprintf("rule %q failed: %v", r.Name(), err),
			Start:    tt.Position{Line: 1, Column: 1},
			End:      tt.Position{Line: 1, Column: 1},
			Severity: tt.SeverityWarning,
		}}
	}
	return issues
}

// structuralIssues reports parse and encoding problems found while
// loading the document.
func (e *Engine) structuralIssues(doc *css.Document) []tt.Issue {
	var issues []tt.Issue
	if !doc.EncodingValid {
		issues = append(issues, tt.Issue{
			Rule:     RuleEncodingError,
			Filename: doc.Filename,
			Message:  "file is not valid UTF-8; content rules skipped",
			Note:     "whitespace rules were run on a Latin-1 fallback decode",
			Start:    tt.Position{Line: 1, Column: 1},
			End:      tt.Position{Line: 1, Column: 1},
			Severity: tt.SeverityWarning,
		})
	}
	for _, perr := range doc.Errors {
		issues = append(issues, tt.Issue{
			Rule:     RuleParseError,
			Filename: doc.Filename,
			Message:  perr.Message,
			Start:    perr.Pos,
			End:      perr.Pos,
			Severity: tt.SeverityError,
		})
	}
	return issues
}

func filterSuppressed(issues []tt.Issue, mgr *nolint.Manager) []tt.Issue {
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsSuppressed(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// IgnoreRule disables a rule by name for this engine.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath skips any file whose path contains the given fragment.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isPathIgnored(path string) bool {
	cleaned := filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if cleaned == ignored || strings.HasPrefix(cleaned, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
