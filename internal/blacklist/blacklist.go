// Package blacklist decides whether vault-relative paths are excluded
// from traversal by the configured ignore patterns.
package blacklist

import (
	"path/filepath"
	"strings"
)

// IsBlacklisted reports whether rel matches any of the patterns.
//
// A pattern containing '*' is matched as a whole-string glob against the
// forward-slash form of rel, with '*' spanning path separators. Any other
// pattern excludes rel when rel starts with the pattern, or when any path
// segment equals the pattern exactly. Note the asymmetry this creates:
// directory-style patterns must end in "/" to work as prefixes, and a
// bare pattern like "Assets" also prefix-matches a file literally named
// "Assets" at the vault root. This mirrors the behaviour users rely on
// and is intentionally not "fixed" here.
func IsBlacklisted(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if strings.Contains(pattern, "*") {
			if globMatch(pattern, rel) {
				return true
			}
			continue
		}
		if strings.HasPrefix(rel, pattern) {
			return true
		}
		for _, segment := range strings.Split(rel, "/") {
			if segment == pattern {
				return true
			}
		}
	}
	return false
}

// globMatch performs a backtracking whole-string glob match where '*'
// matches zero or more characters, including '/'. No character classes,
// no '**'. Patterns and paths are short, so the exponential worst case
// does not matter in practice.
func globMatch(pattern, text string) bool {
	return matchRunes([]rune(pattern), []rune(text))
}

func matchRunes(pattern, text []rune) bool {
	if len(pattern) == 0 {
		return len(text) == 0
	}
	if pattern[0] == '*' {
		// Zero characters first, then one more at a time.
		for i := 0; i <= len(text); i++ {
			if matchRunes(pattern[1:], text[i:]) {
				return true
			}
		}
		return false
	}
	if len(text) == 0 || pattern[0] != text[0] {
		return false
	}
	return matchRunes(pattern[1:], text[1:])
}
