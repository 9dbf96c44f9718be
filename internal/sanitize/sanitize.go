// Package sanitize strips inline markup from provider text.
package sanitize

import "regexp"

// A tag needs a name right after "<" or "</"; attributes must carry a value.
var tagPattern = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][-A-Za-z0-9_:.]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'<>=]+))*\s*/?>`)

// Strip removes every angle-bracket tag, keeping enclosed text.
// Comparison signs and HTML entities are left as-is.
func Strip(text string) string {
	for {
		stripped := tagPattern.ReplaceAllString(text, "")
		if stripped == text {
			return stripped
		}
		text = stripped
	}
}
