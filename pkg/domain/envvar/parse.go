package envvar

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

var ptnValidKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

// Parse reads dotenv formatted content. Declaration order is preserved and a
// repeated key keeps its first position with the last value.
func Parse(r io.Reader) (*Set, error) {
	set := NewSet()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, goerr.Wrap(types.ErrInvalidInput, "missing '=' in env line", goerr.V("line", lineNo))
		}
		key = strings.TrimSpace(key)
		if !ptnValidKey.MatchString(key) {
			return nil, goerr.Wrap(types.ErrInvalidInput, "invalid env variable name", goerr.V("line", lineNo), goerr.V("key", key))
		}

		rest = strings.TrimSpace(rest)
		var value string
		switch {
		case strings.HasPrefix(rest, `"`):
			body := rest[1:]
			for !hasClosingQuote(body) {
				if !scanner.Scan() {
					return nil, goerr.Wrap(types.ErrInvalidInput, "unterminated double quoted value", goerr.V("line", lineNo), goerr.V("key", key))
				}
				lineNo++
				body += "\n" + scanner.Text()
			}
			end := closingQuoteIndex(body)
			value = unescapeDoubleQuoted(body[:end])

		case strings.HasPrefix(rest, `'`):
			end := strings.Index(rest[1:], `'`)
			if end < 0 {
				return nil, goerr.Wrap(types.ErrInvalidInput, "unterminated single quoted value", goerr.V("line", lineNo), goerr.V("key", key))
			}
			value = rest[1 : end+1]

		default:
			if idx := strings.Index(rest, " #"); idx >= 0 {
				rest = rest[:idx]
			}
			value = strings.TrimSpace(rest)
		}

		set.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read env content")
	}

	return set, nil
}

func closingQuoteIndex(s string) int {
	escaped := false
	for i, c := range s {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return i
		}
	}
	return -1
}

func hasClosingQuote(s string) bool {
	return closingQuoteIndex(s) >= 0
}

var doubleQuoteEscapes = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t", `\"`, `"`, `\\`, `\`)

func unescapeDoubleQuoted(s string) string {
	return doubleQuoteEscapes.Replace(s)
}

// ParseFile parses a single dotenv file.
func ParseFile(path string) (*Set, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open env file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	set, err := Parse(fd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse env file", goerr.V("path", path))
	}
	return set, nil
}
