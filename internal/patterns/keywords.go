package patterns

import (
	"regexp"
	"strings"
)

// CompileKeywords joins the literal keywords into one case-insensitive
// alternation. Blank entries are ignored; no keywords yields nil.
func CompileKeywords(words []string) *regexp.Regexp {
	var quoted []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
}

// SplitKeywords splits a comma separated keyword list.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// MatchPrefix reports whether re matches s at its first character.
func MatchPrefix(re *regexp.Regexp, s string) bool {
	if re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

// Search reports whether re matches anywhere in s. A nil pattern never matches.
func Search(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}
