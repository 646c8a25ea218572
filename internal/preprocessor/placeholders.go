package preprocessor

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderToken = regexp.MustCompile(`\{[A-Z][A-Z0-9_]*\}`)

// Substitute replaces every {KEY} in text with placeholders[KEY].
// All keys are replaced in a single pass, so a value that itself looks like
// a placeholder is never expanded again.
func Substitute(text string, placeholders map[string]string) string {
	if len(placeholders) == 0 {
		return text
	}

	keys := make([]string, 0, len(placeholders))
	for key := range placeholders {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	oldnew := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		oldnew = append(oldnew, "{"+key+"}", placeholders[key])
	}

	return strings.NewReplacer(oldnew...).Replace(text)
}

// UnresolvedPlaceholder is a placeholder-shaped token left in substituted text.
type UnresolvedPlaceholder struct {
	Token string // including braces: "{SCHEMA_NAME}"
	Line  int    // 1-based line of the first occurrence
}

// FindUnresolved returns the distinct placeholder-shaped tokens in text in
// order of first appearance.
func FindUnresolved(text string) []UnresolvedPlaceholder {
	matches := placeholderToken.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var result []UnresolvedPlaceholder
	for _, m := range matches {
		token := text[m[0]:m[1]]
		if seen[token] {
			continue
		}
		seen[token] = true
		result = append(result, UnresolvedPlaceholder{
			Token: token,
			Line:  strings.Count(text[:m[0]], "\n") + 1,
		})
	}
	return result
}
