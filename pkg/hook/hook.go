/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hook.go
Description: PostToolUse hook protocol for Akaylee CSV Lint. Reads one JSON envelope
from standard input, filters by tool name and file extension, validates the target and
writes the report to standard error. Exit code 1 only for error findings on a write-style
operation; reads always report without blocking.
*/

package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/kleascm/akaylee-csvlint/pkg/validator"
)

// Envelope is the hook input contract on standard input
type Envelope struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the file path parameter shared by all handled tools
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// handledTools are the only tool invocations that trigger validation
var handledTools = map[string]bool{
	"Read":  true,
	"Write": true,
	"Edit":  true,
}

// Run processes one hook invocation and returns the process exit code.
// Anything that is not a CSV/TSV touched by a handled tool exits 0 silently,
// including malformed envelope JSON. The formatted report goes to stderr only
// and only when non-empty; the target file is never modified.
func Run(stdin io.Reader, stderr io.Writer, engine *validator.Engine) int {
	var env Envelope
	if err := json.NewDecoder(stdin).Decode(&env); err != nil {
		return 0
	}

	if !handledTools[env.ToolName] {
		return 0
	}
	if !Handles(env.ToolInput.FilePath) {
		return 0
	}

	rep := engine.ValidateFile(env.ToolInput.FilePath)

	// Reads always show the full report for context, even when clean
	isRead := env.ToolName == "Read"
	if output := report.FormatText(rep, isRead); output != "" {
		fmt.Fprint(stderr, output)
	}

	// Errors block write-style edits from proceeding silently, never reads
	if rep.ErrorCount > 0 && !isRead {
		return 1
	}
	return 0
}

// Handles reports whether the path is a CSV/TSV target, case-insensitive
func Handles(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".tsv")
}
