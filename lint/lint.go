package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/cssverse/csslin/internal"
	tt "github.com/cssverse/csslin/internal/types"
)

// LintEngine is the surface the orchestration layer needs from the
// engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// New builds an engine from the configuration file at the given path.
// It returns warning issues for unrecognized configuration keys; a
// malformed file is a hard error and nothing is processed.
func New(configurationPath string) (*internal.Engine, []tt.Issue, error) {
	config, warnings, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, nil, err
	}
	engine, err := internal.NewEngine(config.Rules)
	if err != nil {
		return nil, nil, err
	}
	return engine, warnings, nil
}

// Options controls a lint run.
type Options struct {
	// FailFast cancels remaining work once the first error-severity
	// issue is seen.
	FailFast bool

	// NoProgress disables the progress bar on directory runs.
	NoProgress bool
}

// ProcessFiles lints every given path (file or directory) and returns
// the aggregated, sorted issues.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	opts Options,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, opts)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return SortIssues(allIssues), nil
}

// ProcessSources lints raw in-memory sources, used by library callers
// and tests.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := engine.RunSource(source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return SortIssues(allIssues), nil
}

// ProcessPath lints a single file, or every stylesheet under a
// directory using a bounded worker pool. Workers share nothing but the
// final mutex-free channel merge, so parallel and sequential runs
// produce the same issue set. A path that cannot be read is reported
// as an io-error issue; the run continues with the remaining inputs.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	opts Options,
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		if logger != nil {
			logger.Error("Error accessing path", zap.String("path", path), zap.Error(err))
		}
		return []tt.Issue{ioIssue(path, err)}, nil
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		issues, err := engine.Run(path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
			}
			return []tt.Issue{ioIssue(path, err)}, nil
		}
		return issues, nil
	}

	var files []string
	var walkIssues []tt.Issue
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, walkErr error) error {
		if walkErr != nil {
			walkIssues = append(walkIssues, ioIssue(filePath, walkErr))
			return nil
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan []tt.Issue, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	var bar *progressbar.ProgressBar
	if !opts.NoProgress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	for _, filePath := range files {
		sem <- struct{}{}
		go func(fp string) {
			defer func() { <-sem }()

			select {
			case <-runCtx.Done():
				resultChan <- nil
				return
			default:
			}

			issues, err := engine.Run(fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				issues = append(issues, ioIssue(fp, err))
			}
			if opts.FailFast && HasErrors(issues) {
				cancel()
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			resultChan <- issues
		}(filePath)
	}

	issues := walkIssues
	for range files {
		issues = append(issues, <-resultChan...)
	}
	if bar != nil {
		fmt.Println()
	}
	return issues, nil
}

// ioIssue converts a file-level read failure into a reportable issue,
// so the failed file shows up in the output and in the exit code while
// the remaining files are still linted.
func ioIssue(path string, err error) tt.Issue {
	return tt.Issue{
		Rule:     internal.RuleIOError,
		Filename: path,
		Message:  err.Error(),
		Start:    tt.Position{Line: 1, Column: 1},
		End:      tt.Position{Line: 1, Column: 1},
		Severity: tt.SeverityError,
	}
}

// SortIssues orders issues by (file, line, column, rule) and drops
// duplicates that share an identical span and rule identifier.
func SortIssues(issues []tt.Issue) []tt.Issue {
	sorted := make([]tt.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})

	deduped := sorted[:0]
	for i, issue := range sorted {
		if i > 0 && sameSpanAndRule(sorted[i-1], issue) {
			continue
		}
		deduped = append(deduped, issue)
	}
	return deduped
}

// Message is part of the dedup key on purpose: one rule can emit two
// distinct findings on the same span (hex-color reports case and
// shorthand separately), and both must survive.
func sameSpanAndRule(a, b tt.Issue) bool {
	return a.Filename == b.Filename && a.Rule == b.Rule &&
		a.Start == b.Start && a.End == b.End && a.Message == b.Message
}

// HasToolErrors reports whether any issue records a tool-level failure
// (an unreadable file) as opposed to a lint violation; CI distinguishes
// the two through the exit code.
func HasToolErrors(issues []tt.Issue) bool {
	for _, issue := range issues {
		if issue.Rule == internal.RuleIOError {
			return true
		}
	}
	return false
}

// HasErrors reports whether any issue carries error severity; warnings
// never affect pass/fail.
func HasErrors(issues []tt.Issue) bool {
	for _, issue := range issues {
		if issue.Severity == tt.SeverityError {
			return true
		}
	}
	return false
}

var desiredExtensions = map[string]bool{
	".css":  true,
	".less": true,
	".scss": true,
	".sass": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// IsStylesheet reports whether the path has a stylesheet extension.
func IsStylesheet(path string) bool {
	return hasDesiredExtension(path)
}
