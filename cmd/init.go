package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	tt "github.com/cssverse/csslin/internal/types"
	"github.com/cssverse/csslin/lint"
)

// initCmd: csslin init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = lint.DefaultConfigFile
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = lint.DefaultConfigFile
	}

	config := lint.Config{
		Name: "csslin",
		Rules: map[string]tt.ConfigRule{
			"indentation": {
				Severity: tt.SeverityError.Ptr(),
				Options:  map[string]interface{}{"indent-width": 4},
			},
			"max-line-length": {
				Severity: tt.SeverityWarning.Ptr(),
				Options:  map[string]interface{}{"max-line-length": 80},
			},
			"important": {
				Severity: tt.SeverityError.Ptr(),
				Options:  map[string]interface{}{"allow-important-in": []string{"utilities.css"}},
			},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
