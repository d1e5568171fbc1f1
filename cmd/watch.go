package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssverse/csslin/formatter"
	"github.com/cssverse/csslin/internal"
	tt "github.com/cssverse/csslin/internal/types"
	"github.com/cssverse/csslin/lint"
)

// watchCmd: csslin watch
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-lint stylesheets whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, warnings, err := lint.New(configPath())
		if err != nil {
			logger.Error("Failed to initialize lint engine", zap.Error(err))
			os.Exit(exitToolError)
		}
		printIssues(logger, warnings)

		err = engine.StartWatching(args, lint.IsStylesheet,
			func(filename string, issues []tt.Issue) {
				if len(issues) == 0 {
					fmt.Printf("%s: clean\n", filename)
					return
				}
				sourceCode, err := internal.ReadSourceCode(filename)
				if err != nil {
					logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
					return
				}
				fmt.Println(formatter.GenerateFormattedIssue(lint.SortIssues(issues), sourceCode))
			},
			func(err error) {
				logger.Error("Watch error", zap.Error(err))
			},
		)
		if err != nil {
			logger.Error("Failed to start watching", zap.Error(err))
			os.Exit(exitToolError)
		}
		fmt.Printf("watching %v for changes; press Ctrl+C to stop\n", args)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}
