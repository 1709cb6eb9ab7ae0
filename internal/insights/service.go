// Package insights aggregates vendor research queries into the unified
// bundle the dashboard renders.
package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creatorlens/influencer-studio/internal/extract"
	"github.com/creatorlens/influencer-studio/internal/perplexity"
)

const (
	maxCompetitors    = 5
	maxGlobalTrends   = 5
	competitorMaxLen  = 120
	summaryMaxRegions = 3
)

// Bundle is the aggregated research result for one creator profile.
type Bundle struct {
	GlobalTrends   []string           `json:"global_trends"`
	Insights       string             `json:"insights"`
	CountryData    map[string]float64 `json:"country_data"`
	RegionalTrends map[string]string  `json:"regional_trends"`
	Competitors    []string           `json:"competitors"`
}

// Querier is the subset of the research client the aggregator needs.
type Querier interface {
	Ask(ctx context.Context, question string) (string, error)
	Competitors(ctx context.Context, query string) ([]perplexity.Competitor, error)
	GlobalTrends(ctx context.Context, query string) ([]perplexity.GlobalTrend, error)
}

// Service runs the four research queries and assembles the bundle.
type Service struct {
	client Querier
}

// NewService creates an insights service backed by the given research client.
func NewService(client Querier) *Service {
	return &Service{client: client}
}

// Generate runs four independent sequential queries (country engagement,
// regional trends, competitors, global trends) for the profile. Each query's
// failure leaves its slice empty without aborting the others; when every
// query fails the bundle carries a generic advisory message. Never errors.
func (s *Service) Generate(ctx context.Context, niche, audience string) *Bundle {
	failures := 0

	countryData := s.countryScores(ctx, niche, audience, &failures)
	regionalTrends := s.regionalTrends(ctx, niche, &failures)
	competitors := s.competitors(ctx, niche, audience, &failures)
	trends, insights := s.globalTrends(ctx, niche, audience, &failures)

	if failures == 4 {
		slog.Warn("all insight queries failed", "niche", niche)
		return &Bundle{
			GlobalTrends:   []string{},
			Insights:       fmt.Sprintf("Unable to generate insights for %s content. Please check API connection.", niche),
			CountryData:    map[string]float64{},
			RegionalTrends: map[string]string{},
			Competitors:    []string{},
		}
	}

	if insights == "" {
		insights = fmt.Sprintf("Current %s trends show dynamic engagement patterns across global markets.", niche)
	}

	return &Bundle{
		GlobalTrends:   trends,
		Insights:       insights,
		CountryData:    countryData,
		RegionalTrends: regionalTrends,
		Competitors:    competitors,
	}
}

func (s *Service) countryScores(ctx context.Context, niche, audience string, failures *int) map[string]float64 {
	query := fmt.Sprintf("Rate the engagement potential for %s content targeting %s across different countries "+
		"on a scale of 0.0 to 1.0. Consider cultural relevance, internet penetration, and audience interest. "+
		"Provide scores for: USA, Canada, UK, Germany, France, Japan, Australia, Brazil, India, South Africa. "+
		"Format as: Country: 0.XX", niche, audience)

	prose, err := s.client.Ask(ctx, query)
	if err != nil {
		slog.Warn("country engagement query failed", "error", err)
		*failures++
		return map[string]float64{}
	}

	scores := extract.CountryScores(prose)
	if scores == nil {
		scores = map[string]float64{}
	}
	return scores
}

func (s *Service) regionalTrends(ctx context.Context, niche string, failures *int) map[string]string {
	query := fmt.Sprintf("What are the specific viral trends and content formats for %s content in different "+
		"regions: USA, Europe, India, Southeast Asia, Middle East, and Latin America in 2024? "+
		"Be specific about what works in each region.", niche)

	prose, err := s.client.Ask(ctx, query)
	if err != nil {
		slog.Warn("regional trends query failed", "error", err)
		*failures++
		return map[string]string{}
	}

	regional := extract.RegionalTrends(prose)
	if regional == nil {
		regional = map[string]string{}
	}
	return regional
}

func (s *Service) competitors(ctx context.Context, niche, audience string, failures *int) []string {
	query := fmt.Sprintf(`Find the top 5 successful %s content creators targeting %s globally in 2024.

For each creator, provide exact details:
- name: exact creator name or handle
- platform: primary platform (TikTok, Instagram, YouTube, etc.)
- followers: follower count (e.g., "2.5M", "500K")
- content_style: brief description of their content style
- success_factor: what makes them successful (1-2 sentences)

Focus on diverse creators from different regions, not just the same influencer repeatedly.`, niche, audience)

	records, err := s.client.Competitors(ctx, query)
	if err != nil {
		slog.Warn("competitor query failed", "error", err)
		*failures++
		return []string{}
	}

	competitors := make([]string, 0, maxCompetitors)
	for _, rec := range records {
		if len(competitors) == maxCompetitors {
			break
		}
		line := fmt.Sprintf("%s (%s) - %s followers | %s | Success: %s",
			rec.Name, rec.Platform, rec.Followers, rec.ContentStyle, rec.SuccessFactor)
		if len(line) > competitorMaxLen {
			line = line[:competitorMaxLen]
		}
		competitors = append(competitors, line)
	}
	return competitors
}

// globalTrends returns the trend name list plus the insights summary built
// from the top trend. Schema-constrained records are the only source for this
// slice; a failed call leaves it empty.
func (s *Service) globalTrends(ctx context.Context, niche, audience string, failures *int) ([]string, string) {
	query := fmt.Sprintf(`Find the top 5 most viral and trending content topics for %s creators targeting %s in 2024.

For each trend, provide exact details:
- trend: concise trend name/topic
- description: brief description of the trend (1-2 sentences)
- regions: array of regions where it's popular (e.g., ["USA", "Europe", "Asia"])
- engagement_score: estimated engagement potential 1-100 (integer)

Focus on current, specific trends that are actively viral right now.`, niche, audience)

	records, err := s.client.GlobalTrends(ctx, query)
	if err != nil {
		slog.Warn("global trends query failed", "error", err)
		*failures++
		return []string{}, ""
	}

	trends := make([]string, 0, maxGlobalTrends)
	for _, rec := range records {
		if len(trends) == maxGlobalTrends {
			break
		}
		trends = append(trends, rec.Trend)
	}

	if len(records) == 0 {
		return trends, ""
	}

	top := records[0]
	regions := top.Regions
	if len(regions) > summaryMaxRegions {
		regions = regions[:summaryMaxRegions]
	}
	summary := fmt.Sprintf("Leading trend: %s. %s Popular in %s with %d/100 engagement potential.",
		top.Trend, top.Description, strings.Join(regions, ", "), top.EngagementScore)

	return trends, summary
}
