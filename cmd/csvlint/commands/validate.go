/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Validate command implementation for Akaylee CSV Lint. Validates each file
argument, prints text or JSON reports, and exits non-zero when any file has errors.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/kleascm/akaylee-csvlint/pkg/validator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunValidate executes the validate command over all file arguments
func RunValidate(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging(true)
	if err != nil {
		return err
	}
	defer logger.Close()

	engine := validator.NewEngine(logger)

	verbose := viper.GetBool("verbose")
	jsonOutput := viper.GetBool("json_output")
	strict := viper.GetBool("strict")

	anyInvalid := false
	for _, path := range args {
		rep := engine.ValidateFile(path)
		if !rep.Valid || (strict && rep.WarningCount > 0) {
			anyInvalid = true
		}

		if jsonOutput {
			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report for %s: %w", path, err)
			}
			fmt.Fprintln(os.Stdout, string(data))
			continue
		}

		if output := report.FormatText(rep, verbose); output != "" {
			fmt.Fprint(os.Stdout, output)
		} else {
			fmt.Fprintf(os.Stdout, "%s: OK\n", path)
		}
	}

	if anyInvalid {
		logger.Close()
		os.Exit(1)
	}
	return nil
}
