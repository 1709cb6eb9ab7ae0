package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Brand is a collaboration opportunity recovered from a vendor response.
type Brand struct {
	Name               string   `json:"name"`
	FitReason          string   `json:"fit_reason"`
	CollaborationTypes []string `json:"collaboration_types"`
	ValueRange         string   `json:"value_range"`
	Approach           string   `json:"approach"`
}

const (
	maxBrands       = 5
	brandNameMinLen = 3
	brandNameMaxLen = 40
	segmentMinLen   = 15
	fitReasonMinLen = 30
	fitReasonMaxLen = 150
)

const (
	defaultFitReason  = "Good partnership opportunity for content creators"
	defaultValueRange = "Contact for details"
	defaultApproach   = "Direct outreach recommended"
)

var (
	reNumberedSplit = regexp.MustCompile(`\s*\d+\.\s+`)
	reLeadingJunk   = regexp.MustCompile(`^[^a-zA-Z]*`)
	reTrailingJunk  = regexp.MustCompile(`[^a-zA-Z0-9\s&.]+.*$`)
)

// Tokens that flag a mis-extracted "name" (usually a sentence fragment or a
// leaked attribute) rather than an actual brand.
var bannedNameTokens = []string{"why", "typical", "estimated", "contact", "div", "span", "style"}

// Lowercase connector words allowed inside a multi-word brand name.
var nameConnectors = map[string]bool{"&": true, "and": true, "co": true, "inc": true, "ltd": true}

// collabKeywords maps response keywords to display collaboration types,
// checked in this order.
var collabKeywords = []struct {
	keyword string
	display string
}{
	{"sponsored", "Sponsored Posts"},
	{"affiliate", "Affiliate Marketing"},
	{"review", "Product Reviews"},
	{"placement", "Product Placement"},
	{"partnership", "Brand Partnership"},
	{"ambassador", "Brand Ambassador"},
	{"content", "Content Creation"},
}

var fitReasonKeywords = []string{"brand", "fit", "good", "target", "audience", "partner", "collab", "work"}

// Currency-range patterns tried in order: dollar range, dollar floor, rupee
// range, rupee floor.
var valuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*[-–]\$?\d{1,3}(?:,\d{3})*`),
	regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*\+`),
	regexp.MustCompile(`₹\d{1,3}(?:,\d{3})*[-–]₹?\d{1,3}(?:,\d{3})*`),
	regexp.MustCompile(`₹\d{1,3}(?:,\d{3})*\+`),
}

// fallbackBrand is returned when no brand survives extraction, so the panel
// always has something to show.
var fallbackBrand = Brand{
	Name:               "Fitness Brand Opportunities",
	FitReason:          "Multiple fitness brands actively seek influencer partnerships with engaged audiences.",
	CollaborationTypes: []string{"Sponsored Content", "Product Reviews", "Affiliate Marketing"},
	ValueRange:         "$100-$1,000+",
	Approach:           "Research brands in your niche and reach out directly",
}

// BrandsFromProse parses numbered brand descriptions out of an unstructured
// completion. Lossy by design: segments that fail name validation are
// dropped, and a single canned brand is returned when nothing survives.
func BrandsFromProse(content string) []Brand {
	clean := Sanitize(content)
	segments := reNumberedSplit.Split(clean, -1)

	var brands []Brand
	for i, segment := range segments {
		if i == 0 {
			// Text before the first list marker is preamble.
			continue
		}
		segment = strings.TrimSpace(segment)
		if len(segment) < segmentMinLen {
			continue
		}

		name := extractBrandName(segment)
		if !validBrandName(name) {
			continue
		}

		brands = append(brands, Brand{
			Name:               name,
			FitReason:          extractFitReason(segment, name),
			CollaborationTypes: extractCollabTypes(segment),
			ValueRange:         extractValueRange(segment),
			Approach:           extractApproach(segment),
		})
	}

	if len(brands) == 0 {
		return []Brand{fallbackBrand}
	}
	if len(brands) > maxBrands {
		brands = brands[:maxBrands]
	}
	return brands
}

// extractBrandName scans the first five words for a capitalized token and
// greedily appends following capitalized or connector tokens.
func extractBrandName(segment string) string {
	words := strings.Fields(segment)
	if len(words) > 5 {
		words = words[:5]
	}

	name := "Brand Partner"
	for j, word := range words {
		if len(word) <= 2 || !startsUpper(word) {
			continue
		}

		parts := []string{word}
		for k := j + 1; k < len(words) && k < j+4; k++ {
			next := words[k]
			if next != "" && (startsUpper(next) || nameConnectors[strings.ToLower(next)]) {
				parts = append(parts, next)
			} else {
				break
			}
		}

		candidate := strings.Join(parts, " ")
		if len(candidate) >= brandNameMinLen && len(candidate) <= brandNameMaxLen {
			name = candidate
			break
		}
	}

	name = reLeadingJunk.ReplaceAllString(name, "")
	name = reTrailingJunk.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func validBrandName(name string) bool {
	if len(name) < brandNameMinLen || len(name) > brandNameMaxLen {
		return false
	}
	lower := strings.ToLower(name)
	for _, banned := range bannedNameTokens {
		if strings.Contains(lower, banned) {
			return false
		}
	}
	return true
}

// extractFitReason picks the first sentence of plausible length that carries
// a partnership keyword and doesn't just restate the brand name.
func extractFitReason(segment, name string) string {
	lowerName := strings.ToLower(name)

	for _, sentence := range strings.Split(segment, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= fitReasonMinLen || len(sentence) >= fitReasonMaxLen {
			continue
		}
		if !containsAny(strings.ToLower(sentence), fitReasonKeywords) {
			continue
		}

		sentence = strings.TrimSpace(reLeadingJunk.ReplaceAllString(sentence, ""))
		if sentence == "" || strings.HasPrefix(strings.ToLower(sentence), lowerName) {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		return sentence
	}

	return defaultFitReason
}

func extractCollabTypes(segment string) []string {
	lower := strings.ToLower(segment)

	var found []string
	for _, ck := range collabKeywords {
		if strings.Contains(lower, ck.keyword) {
			found = append(found, ck.display)
		}
	}
	if len(found) == 0 {
		return []string{"Sponsored Content"}
	}
	if len(found) > 3 {
		found = found[:3]
	}
	return found
}

func extractValueRange(segment string) string {
	for _, pattern := range valuePatterns {
		if m := pattern.FindString(segment); m != "" {
			return m
		}
	}
	return defaultValueRange
}

func extractApproach(segment string) string {
	lower := strings.ToLower(segment)
	switch {
	case strings.Contains(lower, "website") || strings.Contains(lower, "portal"):
		return "Apply through official website"
	case strings.Contains(lower, "email"):
		return "Direct email contact"
	case strings.Contains(lower, "social media") || strings.Contains(lower, "instagram"):
		return "Social media outreach"
	default:
		return defaultApproach
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
