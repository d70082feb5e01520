// Package splitter splits a SQL script into individual statements.
//
// The split is purely lexical: the scanner tracks string literals and
// comments so that a semicolon inside either does not terminate a
// statement, but it never tokenizes or parses the SQL itself.
package splitter

import (
	"strings"
)

// SingleSQL is one statement split out of a larger script.
type SingleSQL struct {
	// Text is the statement text, terminator included when present.
	Text string
	// BaseLine is the zero-based line the statement starts on.
	BaseLine int
	// Empty marks statements with no content besides the terminator.
	Empty bool
}

// SplitSQL splits a script on semicolons, skipping semicolons that
// appear inside single-quoted, double-quoted, or backtick-quoted
// literals, '--' line comments, and '/* */' block comments. Trailing
// text without a terminator still forms a final statement.
func SplitSQL(script string) []SingleSQL {
	var result []SingleSQL

	line := 0
	startLine := 0
	start := 0
	i := 0
	for i < len(script) {
		c := script[i]
		switch c {
		case '\n':
			line++
			i++
		case '\'', '"', '`':
			i = skipQuoted(script, i, c, &line)
		case '-':
			if i+1 < len(script) && script[i+1] == '-' {
				i = skipLineComment(script, i)
			} else {
				i++
			}
		case '/':
			if i+1 < len(script) && script[i+1] == '*' {
				i = skipBlockComment(script, i, &line)
			} else {
				i++
			}
		case ';':
			text, baseLine := trimLeading(script[start:i+1], startLine)
			result = append(result, SingleSQL{
				Text:     text,
				BaseLine: baseLine,
				Empty:    isEmpty(text),
			})
			i++
			start = i
			startLine = line
		default:
			i++
		}
	}

	if rest := script[start:]; strings.TrimSpace(rest) != "" {
		text, baseLine := trimLeading(rest, startLine)
		result = append(result, SingleSQL{
			Text:     text,
			BaseLine: baseLine,
		})
	}

	return result
}

// skipQuoted advances past a quoted literal. A doubled quote character
// inside the literal is the standard SQL escape; a backslash escape is
// honored for the MySQL dialects. An unterminated literal runs to the
// end of the script.
func skipQuoted(script string, i int, quote byte, line *int) int {
	i++ // opening quote
	for i < len(script) {
		switch script[i] {
		case '\n':
			*line++
			i++
		case '\\':
			i += 2
		case quote:
			if i+1 < len(script) && script[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipLineComment(script string, i int) int {
	for i < len(script) && script[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(script string, i int, line *int) int {
	i += 2 // opening /*
	for i < len(script) {
		if script[i] == '\n' {
			*line++
		}
		if script[i] == '*' && i+1 < len(script) && script[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return i
}

// trimLeading drops leading whitespace from a statement so that
// BaseLine points at the line the statement text actually starts on.
func trimLeading(text string, baseLine int) (string, int) {
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			baseLine++
		case ' ', '\t', '\r':
		default:
			return text[i:], baseLine
		}
		i++
	}
	return text[i:], baseLine
}

func isEmpty(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || trimmed == ";"
}
