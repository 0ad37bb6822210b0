package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/donaldgifford/catalog-browser/internal/upstream"
)

// MatchMode selects how search text is matched against product titles.
type MatchMode string

// Match modes.
const (
	// MatchWordPrefix requires the text to start at a word boundary.
	MatchWordPrefix MatchMode = "word_prefix"
	// MatchSubstring accepts the text anywhere in the title.
	MatchSubstring MatchMode = "substring"
)

// ParseMatchMode validates a configured match mode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch m := MatchMode(strings.ToLower(strings.TrimSpace(s))); m {
	case MatchWordPrefix, MatchSubstring:
		return m, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want %s or %s)", s, MatchWordPrefix, MatchSubstring)
	}
}

// DefaultMatchMode returns the match mode a dialect's upstream search
// semantics correspond to.
func DefaultMatchMode(d upstream.Dialect) MatchMode {
	if d == upstream.DialectPlatzi {
		return MatchSubstring
	}
	return MatchWordPrefix
}

// Matcher reports whether a title matches a compiled query.
type Matcher func(title string) bool

// NewMatcher compiles text once for repeated matching. Empty or
// whitespace-only text matches every title. Text is always matched
// literally and case-insensitively. In word-prefix mode a token boundary is
// the start of the title or any rune that is neither a letter nor a digit,
// in any script; underscores separate tokens.
func NewMatcher(mode MatchMode, text string) Matcher {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return func(string) bool { return true }
	}

	if mode == MatchSubstring {
		return func(title string) bool {
			return strings.Contains(strings.ToLower(title), query)
		}
	}

	re := regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(query))
	return func(title string) bool {
		return re.MatchString(strings.ToLower(title))
	}
}

// MatchWordPrefixTitle reports whether text occurs in title starting at a
// word boundary, ignoring case.
func MatchWordPrefixTitle(title, text string) bool {
	return NewMatcher(MatchWordPrefix, text)(title)
}
