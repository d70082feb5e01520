// Package reporter renders check findings for human consumption.
package reporter

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/nsxbet/sqlcheck/pkg/types"
)

// Console writes findings to a terminal with severity coloring.
//
// Emit is serialized by an internal mutex, so a single Console may be
// shared as a sink across concurrently checked statements.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewConsole creates a console reporter writing to stdout. With verbose
// set, the full rationale of every finding is printed; otherwise only
// the title line and offending statement.
func NewConsole(verbose bool) *Console {
	return &Console{out: os.Stdout, verbose: verbose}
}

// NewConsoleWriter creates a console reporter writing to w.
func NewConsoleWriter(w io.Writer, verbose bool) *Console {
	return &Console{out: w, verbose: verbose}
}

// Emit prints a single finding.
func (r *Console) Emit(advice *types.Advice) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var levelColor *color.Color
	switch advice.Status {
	case types.Advice_ERROR:
		levelColor = color.New(color.FgRed, color.Bold)
	case types.Advice_WARNING:
		levelColor = color.New(color.FgYellow, color.Bold)
	default:
		levelColor = color.New(color.FgWhite)
	}

	position := ""
	if advice.StartPosition != nil {
		position = fmt.Sprintf(" at line %d", advice.StartPosition.Line+1)
	}

	fmt.Fprintf(r.out, "[%s] (%s) %s%s\n",
		levelColor.Sprint(advice.Status), advice.PatternType, advice.Title, position)
	if advice.Statement != "" {
		fmt.Fprintf(r.out, "\tStatement: %s\n", color.CyanString(normalizeStatement(advice.Statement)))
	}
	if r.verbose && advice.Content != advice.Title {
		fmt.Fprintf(r.out, "%s\n", indent(advice.Content))
	}
	fmt.Fprintln(r.out)
}

// Report prints every finding followed by a summary line.
func (r *Console) Report(advices []*types.Advice) error {
	if len(advices) == 0 {
		_, err := fmt.Fprintln(r.out, color.GreenString("✔ No SQL anti-patterns found."))
		return err
	}

	errorCount := 0
	warningCount := 0
	for _, advice := range advices {
		r.Emit(advice)
		switch advice.Status {
		case types.Advice_ERROR:
			errorCount++
		case types.Advice_WARNING:
			warningCount++
		}
	}

	_, err := fmt.Fprintf(r.out, "%s %d error(s), %d warning(s)\n",
		color.RedString("✘"), errorCount, warningCount)
	return err
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// normalizeStatement collapses whitespace and truncates long statements
// so a finding stays on one readable line.
func normalizeStatement(statement string) string {
	statement = whitespaceRE.ReplaceAllString(strings.TrimSpace(statement), " ")
	const maxLength = 120
	if len(statement) > maxLength {
		return statement[:maxLength] + "..."
	}
	return statement
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "\t" + line
	}
	return strings.Join(lines, "\n")
}
