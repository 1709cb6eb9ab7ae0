package qloo

import (
	"context"
	"log/slog"
	"strings"
)

// countryNames maps ISO-3 codes to display names for fallback responses.
var countryNames = map[string]string{
	"USA": "United States",
	"GBR": "United Kingdom",
	"CAN": "Canada",
	"AUS": "Australia",
	"DEU": "Germany",
	"FRA": "France",
	"JPN": "Japan",
}

// fallbackCountryScores is served when the geography endpoint is unavailable.
var fallbackCountryScores = map[string]CountryScore{
	"USA": {RelevanceScore: 0.85},
	"GBR": {RelevanceScore: 0.75},
	"CAN": {RelevanceScore: 0.70},
	"AUS": {RelevanceScore: 0.65},
	"DEU": {RelevanceScore: 0.60},
}

// fallbackTopicsByCategory is served when the region trends endpoint returns
// no topics but the request itself succeeded.
var fallbackTopicsByCategory = map[string][]string{
	"fashion": {"Sustainable Fashion", "Vintage Styles", "Streetwear", "Minimalism", "Bold Colors"},
	"tech":    {"AI Tools", "Smart Home", "Productivity Apps", "Digital Wellness", "Virtual Reality"},
	"fitness": {"HIIT Workouts", "Mind-Body Balance", "Nutrition Planning", "Home Fitness", "Outdoor Training"},
}

var defaultFallbackTopics = []string{
	"Visual Storytelling", "Short-form Content", "Behind-the-Scenes", "User Engagement", "Collaborations",
}

// genericTrendingTopics is served when the region trends request fails outright.
var genericTrendingTopics = []string{
	"Visual Storytelling",
	"Authentic Content",
	"Interactive Polls",
	"Behind-the-Scenes",
	"Sustainability",
	"Local Culture",
	"Niche Communities",
	"User-Generated Content",
	"Short-form Videos",
	"Social Commerce",
}

type geographyRequest struct {
	ContentCategory string `json:"content_category"`
	AudienceType    string `json:"audience_type"`
}

type geographyResponse struct {
	Countries map[string]CountryScore `json:"countries"`
	Results   []struct {
		CountryCode    string  `json:"country_code"`
		CountryName    string  `json:"country_name"`
		RelevanceScore float64 `json:"relevance_score"`
	} `json:"results"`
}

// CountryInsights returns per-country relevance for a content category and
// audience. A failed or unrecognized response yields static fallback scores,
// never an error.
func (c *Client) CountryInsights(ctx context.Context, contentCategory, audienceType string) *CountryInsights {
	payload := geographyRequest{
		ContentCategory: contentCategory,
		AudienceType:    audienceType,
	}

	var resp geographyResponse
	if err := c.doPost(ctx, "/insights/geography", payload, &resp); err != nil {
		slog.Warn("qloo geography request failed, using fallback scores", "error", err)
		return &CountryInsights{Countries: fallbackCountryScores}
	}

	if len(resp.Countries) > 0 {
		return &CountryInsights{Countries: resp.Countries}
	}

	countries := make(map[string]CountryScore)
	for _, r := range resp.Results {
		if r.CountryCode == "" {
			continue
		}
		name := r.CountryName
		if name == "" {
			name = "Unknown"
		}
		countries[r.CountryCode] = CountryScore{
			RelevanceScore: r.RelevanceScore,
			Name:           name,
		}
	}
	return &CountryInsights{Countries: countries}
}

type regionTrendsRequest struct {
	CountryCode     string `json:"country_code"`
	ContentCategory string `json:"content_category"`
	AudienceType    string `json:"audience_type"`
}

// TrendingTopics returns the trending topics for one country. Missing topics
// yield category fallbacks; a failed request yields a generic topic list.
// Never errors.
func (c *Client) TrendingTopics(ctx context.Context, countryCode, contentCategory, audienceType string) *RegionTrends {
	payload := regionTrendsRequest{
		CountryCode:     countryCode,
		ContentCategory: contentCategory,
		AudienceType:    audienceType,
	}

	var resp RegionTrends
	if err := c.doPost(ctx, "/trends/region", payload, &resp); err != nil {
		slog.Warn("qloo region trends request failed, using generic topics", "country", countryCode, "error", err)
		return &RegionTrends{
			CountryCode:    countryCode,
			CountryName:    countryCode,
			TrendingTopics: genericTrendingTopics,
		}
	}

	if len(resp.TrendingTopics) > 0 {
		name := resp.CountryName
		if name == "" {
			name = countryCode
		}
		return &RegionTrends{
			CountryCode:    countryCode,
			CountryName:    name,
			TrendingTopics: resp.TrendingTopics,
		}
	}

	name := countryNames[countryCode]
	if name == "" {
		name = countryCode
	}
	topics, ok := fallbackTopicsByCategory[strings.ToLower(contentCategory)]
	if !ok {
		topics = defaultFallbackTopics
	}
	return &RegionTrends{
		CountryCode:    countryCode,
		CountryName:    name,
		TrendingTopics: topics,
	}
}
