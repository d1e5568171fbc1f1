package internal

import (
	"fmt"

	"github.com/cssverse/csslin/internal/css"
	"github.com/cssverse/csslin/internal/lints"
	tt "github.com/cssverse/csslin/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given document and returns a
	// slice of Issues.
	Check(doc *css.Document) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// ConfigurableRule is implemented by rules that accept options from
// the configuration file.
type ConfigurableRule interface {
	LintRule
	Configure(options map[string]interface{}) error
}

// LineBasedRule marks rules that operate on raw lines only and can
// therefore run even when the file's encoding had to be recovered.
type LineBasedRule interface {
	LintRule
	LineBased()
}

type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity     { return r.severity }
func (r *baseRule) SetSeverity(s tt.Severity) { r.severity = s }

// -----------------------------------------------------------------------------

type IndentationRule struct {
	baseRule
	IndentWidth int
}

func NewIndentationRule() LintRule {
	return &IndentationRule{baseRule: baseRule{tt.SeverityError}, IndentWidth: 4}
}

func (r *IndentationRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectIndentation(doc, r.IndentWidth, r.severity)
}

func (r *IndentationRule) Name() string { return "indentation" }

func (r *IndentationRule) LineBased() {}

func (r *IndentationRule) Configure(options map[string]interface{}) error {
	return intOption(options, "indent-width", &r.IndentWidth)
}

type TrailingWhitespaceRule struct{ baseRule }

func NewTrailingWhitespaceRule() LintRule {
	return &TrailingWhitespaceRule{baseRule{tt.SeverityError}}
}

func (r *TrailingWhitespaceRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectTrailingWhitespace(doc, r.severity)
}

func (r *TrailingWhitespaceRule) Name() string { return "trailing-whitespace" }

func (r *TrailingWhitespaceRule) LineBased() {}

type MaxLineLengthRule struct {
	baseRule
	MaxLength int
}

func NewMaxLineLengthRule() LintRule {
	return &MaxLineLengthRule{baseRule: baseRule{tt.SeverityWarning}, MaxLength: 80}
}

func (r *MaxLineLengthRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectLongLines(doc, r.MaxLength, r.severity)
}

func (r *MaxLineLengthRule) Name() string { return "max-line-length" }

func (r *MaxLineLengthRule) LineBased() {}

func (r *MaxLineLengthRule) Configure(options map[string]interface{}) error {
	return intOption(options, "max-line-length", &r.MaxLength)
}

type BracePlacementRule struct{ baseRule }

func NewBracePlacementRule() LintRule {
	return &BracePlacementRule{baseRule{tt.SeverityError}}
}

func (r *BracePlacementRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectBracePlacement(doc, r.severity)
}

func (r *BracePlacementRule) Name() string { return "brace-placement" }

type DeclarationSeparationRule struct{ baseRule }

func NewDeclarationSeparationRule() LintRule {
	return &DeclarationSeparationRule{baseRule{tt.SeverityError}}
}

func (r *DeclarationSeparationRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectDeclarationSeparation(doc, r.severity)
}

func (r *DeclarationSeparationRule) Name() string { return "declaration-separation" }

type HexColorRule struct{ baseRule }

func NewHexColorRule() LintRule {
	return &HexColorRule{baseRule{tt.SeverityWarning}}
}

func (r *HexColorRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectHexColorStyle(doc, r.severity)
}

func (r *HexColorRule) Name() string { return "hex-color" }

type QuoteStyleRule struct{ baseRule }

func NewQuoteStyleRule() LintRule {
	return &QuoteStyleRule{baseRule{tt.SeverityWarning}}
}

func (r *QuoteStyleRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectQuoteStyle(doc, r.severity)
}

func (r *QuoteStyleRule) Name() string { return "quote-style" }

type ZeroUnitRule struct{ baseRule }

func NewZeroUnitRule() LintRule {
	return &ZeroUnitRule{baseRule{tt.SeverityWarning}}
}

func (r *ZeroUnitRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectZeroUnit(doc, r.severity)
}

func (r *ZeroUnitRule) Name() string { return "zero-unit" }

type DeclarationOrderRule struct {
	baseRule
	OncePerRuleset bool
}

func NewDeclarationOrderRule() LintRule {
	return &DeclarationOrderRule{baseRule: baseRule{tt.SeverityError}}
}

func (r *DeclarationOrderRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectDeclarationOrder(doc, r.OncePerRuleset, r.severity)
}

func (r *DeclarationOrderRule) Name() string { return "declaration-order" }

func (r *DeclarationOrderRule) Configure(options map[string]interface{}) error {
	return boolOption(options, "report-once-per-ruleset", &r.OncePerRuleset)
}

type IDSelectorRule struct{ baseRule }

func NewIDSelectorRule() LintRule {
	return &IDSelectorRule{baseRule{tt.SeverityWarning}}
}

func (r *IDSelectorRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectIDSelector(doc, r.severity)
}

func (r *IDSelectorRule) Name() string { return "id-selector" }

type QualifiedSelectorRule struct {
	baseRule
	Allow []string
}

func NewQualifiedSelectorRule() LintRule {
	return &QualifiedSelectorRule{baseRule: baseRule{tt.SeverityWarning}}
}

func (r *QualifiedSelectorRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectQualifiedSelector(doc, r.Allow, r.severity)
}

func (r *QualifiedSelectorRule) Name() string { return "qualified-selector" }

func (r *QualifiedSelectorRule) Configure(options map[string]interface{}) error {
	return stringsOption(options, "allow", &r.Allow)
}

type ImportantRule struct {
	baseRule
	AllowIn []string
}

func NewImportantRule() LintRule {
	return &ImportantRule{baseRule: baseRule{tt.SeverityError}}
}

func (r *ImportantRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectImportant(doc, r.AllowIn, r.severity)
}

func (r *ImportantRule) Name() string { return "important" }

func (r *ImportantRule) Configure(options map[string]interface{}) error {
	return stringsOption(options, "allow-important-in", &r.AllowIn)
}

type NamingConventionRule struct {
	baseRule
	Options lints.NamingOptions
}

func NewNamingConventionRule() LintRule {
	return &NamingConventionRule{baseRule: baseRule{tt.SeverityError}}
}

func (r *NamingConventionRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectNamingConvention(doc, r.Options, r.severity)
}

func (r *NamingConventionRule) Name() string { return "naming-convention" }

func (r *NamingConventionRule) Configure(options map[string]interface{}) error {
	if err := boolOption(options, "root-module-allow-hyphen", &r.Options.RootModuleAllowHyphen); err != nil {
		return err
	}
	return stringsOption(options, "root-module-exceptions", &r.Options.RootModuleExceptions)
}

type MaxNestingDepthRule struct {
	baseRule
	MaxDepth int
}

func NewMaxNestingDepthRule() LintRule {
	return &MaxNestingDepthRule{baseRule: baseRule{tt.SeverityWarning}, MaxDepth: 3}
}

func (r *MaxNestingDepthRule) Check(doc *css.Document) ([]tt.Issue, error) {
	return lints.DetectDeepNesting(doc, r.MaxDepth, r.severity)
}

func (r *MaxNestingDepthRule) Name() string { return "max-nesting-depth" }

func (r *MaxNestingDepthRule) Configure(options map[string]interface{}) error {
	return intOption(options, "max-depth", &r.MaxDepth)
}

// -----------------------------------------------------------------------------
// option decoding helpers; YAML hands us interface{} values

func intOption(options map[string]interface{}, key string, dst *int) error {
	raw, ok := options[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case int:
		*dst = v
	case float64:
		*dst = int(v)
	default:
		return fmt.Errorf("option %q: expected integer, got %T", key, raw)
	}
	return nil
}

func boolOption(options map[string]interface{}, key string, dst *bool) error {
	raw, ok := options[key]
	if !ok {
		return nil
	}
	v, ok := raw.(bool)
	if !ok {
		return fmt.Errorf("option %q: expected boolean, got %T", key, raw)
	}
	*dst = v
	return nil
}

func stringsOption(options map[string]interface{}, key string, dst *[]string) error {
	raw, ok := options[key]
	if !ok {
		return nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return fmt.Errorf("option %q: expected list of strings, got %T", key, raw)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return fmt.Errorf("option %q: expected string element, got %T", key, item)
		}
		out = append(out, s)
	}
	*dst = out
	return nil
}
