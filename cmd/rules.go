package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssverse/csslin/lint"
)

// rulesCmd: csslin rules
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered lint rules and their severities",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, err := lint.New(configPath())
		if err != nil {
			logger.Error("Failed to initialize lint engine", zap.Error(err))
			os.Exit(exitToolError)
		}
		for _, rule := range engine.Rules() {
			fmt.Printf("%-24s %s\n", rule.Name(), strings.ToLower(rule.Severity().String()))
		}
	},
}
