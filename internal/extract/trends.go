package extract

import (
	"regexp"
	"strings"
)

const (
	maxTrends      = 5
	trendMinLen    = 10
	trendMaxLen    = 80
	trendTruncLen  = 50
	regionMinLen   = 30
	regionTruncLen = 150
)

// Regions the regional-trend query asks about; paragraphs are matched
// against these by case-insensitive substring.
var TrendRegions = []string{"USA", "Europe", "India", "Asia", "Middle East", "Latin America"}

var (
	reSplitTrends = regexp.MustCompile(`[\n•\-]`)
	reNumbering   = regexp.MustCompile(`^\d+\.\s*`)
	reBullet      = regexp.MustCompile(`^[*\-•]\s*`)
	trendWords    = []string{"trending", "popular", "viral"}
)

// TrendList pulls short trend blurbs out of prose. A segment qualifies if it
// carries a numeric list prefix or mentions a trend word; qualifying segments
// are stripped of numbering, length-filtered and truncated. At most five
// trends are returned.
func TrendList(prose string) []string {
	var trends []string

	for _, section := range reSplitTrends.Split(prose, -1) {
		section = strings.TrimSpace(section)
		if !reNumbering.MatchString(section) && !containsTrendWord(section) {
			continue
		}

		clean := reNumbering.ReplaceAllString(section, "")
		clean = reBullet.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(clean)

		if len(clean) > trendMinLen && len(clean) < trendMaxLen {
			trends = append(trends, truncate(clean, trendTruncLen))
		}
		if len(trends) == maxTrends {
			break
		}
	}

	return trends
}

func containsTrendWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range trendWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// RegionalTrends maps each known region to the longest paragraph mentioning
// it. Paragraphs shorter than regionMinLen never qualify; regions with no
// qualifying paragraph are omitted. The winning paragraph is stripped of
// markdown markers and numbering, then truncated.
func RegionalTrends(prose string) map[string]string {
	paragraphs := strings.Split(prose, "\n\n")
	regional := make(map[string]string)

	for _, region := range TrendRegions {
		needle := strings.ToLower(region)
		best := ""

		for _, paragraph := range paragraphs {
			if len(paragraph) <= regionMinLen || !strings.Contains(strings.ToLower(paragraph), needle) {
				continue
			}

			clean := strings.ReplaceAll(paragraph, "*", "")
			clean = strings.ReplaceAll(clean, "---", "")
			clean = strings.TrimSpace(clean)
			clean = reNumbering.ReplaceAllString(clean, "")

			if len(clean) > len(best) {
				best = clean
			}
		}

		if best != "" {
			regional[region] = truncate(best, regionTruncLen)
		}
	}

	return regional
}
