// Package extract recovers structured insight records from free-text LLM
// completions using ordered, best-effort string heuristics.
package extract

import (
	"regexp"
	"strings"
)

// Ordered cleaning passes. Each pass is idempotent, so sanitizing already
// clean text is a no-op.
var (
	reKnownTags   = regexp.MustCompile(`</?(?:div|span|p|strong|b|i|em|br|hr)[^>]*>`)
	reAnyTag      = regexp.MustCompile(`<[^>]*>`)
	reEntity      = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	reBold        = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	reUnderscore  = regexp.MustCompile(`_{1,3}([^_]+)_{1,3}`)
	reHeading     = regexp.MustCompile(`#{1,6}\s*([^\n]+)`)
	reCiteNum     = regexp.MustCompile(`\[\d+\]`)
	reBracketed   = regexp.MustCompile(`\[[^\]]*\]`)
	reParenAside  = regexp.MustCompile(`\([^)]*\)`)
	reAttrPattern = regexp.MustCompile(`\w+\s*=\s*["'][^"']*["']`)
	reBlankLines  = regexp.MustCompile(`\n\s*\n+`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// Sanitize strips markup, markdown, citation markers, parenthetical asides
// and inline attribute patterns from a string, then collapses whitespace.
// Every extracted field goes through here before it reaches a template.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	clean := text
	clean = reKnownTags.ReplaceAllString(clean, " ")
	clean = reAnyTag.ReplaceAllString(clean, "")
	clean = reEntity.ReplaceAllString(clean, "")
	clean = reBold.ReplaceAllString(clean, "$1")
	clean = reUnderscore.ReplaceAllString(clean, "$1")
	clean = reHeading.ReplaceAllString(clean, "$1")
	clean = reCiteNum.ReplaceAllString(clean, "")
	clean = reBracketed.ReplaceAllString(clean, "")
	clean = reParenAside.ReplaceAllString(clean, "")
	clean = reAttrPattern.ReplaceAllString(clean, "")
	clean = reBlankLines.ReplaceAllString(clean, "\n")
	clean = reWhitespace.ReplaceAllString(clean, " ")

	return strings.TrimSpace(clean)
}

// truncate caps s at max bytes. Extracted segments are ASCII-ish prose, so
// byte truncation matches the upstream behavior.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
