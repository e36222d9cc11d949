/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hook.go
Description: Hook command implementation for Akaylee CSV Lint. Runs the PostToolUse
protocol: one JSON envelope on stdin, the validation report on stderr, exit code via
the hook package's blocking rules.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-csvlint/pkg/hook"
	"github.com/kleascm/akaylee-csvlint/pkg/validator"
	"github.com/spf13/cobra"
)

// RunHook executes one hook invocation and exits with the protocol's code
func RunHook(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Stderr must carry only the report in hook mode
	logger, err := SetupLogging(false)
	if err != nil {
		return err
	}

	engine := validator.NewEngine(logger)
	code := hook.Run(os.Stdin, os.Stderr, engine)

	logger.Close()
	os.Exit(code)
	return nil
}
