package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssverse/csslin/formatter"
	"github.com/cssverse/csslin/internal"
	tt "github.com/cssverse/csslin/internal/types"
	"github.com/cssverse/csslin/lint"
)

// tool-level failures (bad config, unreadable input set) exit with 2
// so CI can tell "stylesheet needs fixing" from "linter broke".
const (
	exitLintFailure = 1
	exitToolError   = 2
)

var (
	ignoreRules  string
	ignorePaths  string
	outputFormat string
	outPath      string
	failFast     bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run the normal lint process",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "error: Please provide file or directory paths")
			os.Exit(exitToolError)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, warnings, err := lint.New(configPath())
		if err != nil {
			logger.Error("Failed to initialize lint engine", zap.Error(err))
			os.Exit(exitToolError)
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}
		if ignorePaths != "" {
			for _, path := range strings.Split(ignorePaths, ",") {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		runNormalLintProcess(ctx, logger, engine, args, warnings)
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	lintCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	lintCmd.Flags().StringVar(&outputFormat, "format", "pretty", "Output format: pretty, human, or json")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	lintCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop linting remaining files after the first error")
}

func runNormalLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, warnings []tt.Issue) {
	issues, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.Options{FailFast: failFast})
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(exitToolError)
	}
	issues = lint.SortIssues(append(warnings, issues...))

	printIssues(logger, issues)

	// an unreadable file is a tool failure, not a lint failure; it wins
	switch {
	case lint.HasToolErrors(issues):
		os.Exit(exitToolError)
	case lint.HasErrors(issues):
		os.Exit(exitLintFailure)
	}
}

func printIssues(logger *zap.Logger, issues []tt.Issue) {
	switch outputFormat {
	case "json":
		printJSON(logger, issues)
	case "human":
		fmt.Print(formatter.GenerateLineOutput(issues))
	default:
		printPretty(logger, issues)
	}
}

func printPretty(logger *zap.Logger, issues []tt.Issue) {
	issuesByFile := groupByFile(issues)

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fileIssues := issuesByFile[filename]
		var sourceCode *internal.SourceCode
		if filename != "" {
			var err error
			sourceCode, err = internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				sourceCode = nil
			}
		}
		fmt.Println(formatter.GenerateFormattedIssue(fileIssues, sourceCode))
	}
}

func printJSON(logger *zap.Logger, issues []tt.Issue) {
	d, err := json.Marshal(groupByFile(issues))
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if outPath == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}

func groupByFile(issues []tt.Issue) map[string][]tt.Issue {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}
	return issuesByFile
}
