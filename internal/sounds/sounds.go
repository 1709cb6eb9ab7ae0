// Package sounds discovers trending audio tracks and brand collaboration
// opportunities for content creators.
package sounds

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/creatorlens/influencer-studio/internal/extract"
	"github.com/creatorlens/influencer-studio/internal/perplexity"
)

// Emerging criteria and performance tier cutoffs.
const (
	viralUsageFloor    = 2_000_000
	trendingUsageFloor = 500_000
	emergingUsageCap   = 1_000_000
	emergingScoreFloor = 75
)

// Sound is one trending audio track.
type Sound struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Artist              string   `json:"artist"`
	Duration            int      `json:"duration"`
	Genre               string   `json:"genre"`
	Mood                string   `json:"mood"`
	ViralPotential      string   `json:"viral_potential"`
	UsageCount          int      `json:"usage_count"`
	TrendScore          int      `json:"trend_score"`
	Hashtags            []string `json:"hashtags"`
	BestContentTypes    []string `json:"best_content_types"`
	TrendingRegions     []string `json:"trending_regions"`
	PeakUsageTime       string   `json:"peak_usage_time"`
	PreviewURL          string   `json:"audio_preview_url"`
	RecommendationScore int      `json:"recommendation_score,omitempty"`
}

// Performance summarizes how a sound is doing right now.
type Performance struct {
	SoundID          string   `json:"sound_id"`
	Tier             string   `json:"performance_tier"`
	UsageCount       int      `json:"usage_count"`
	TrendScore       int      `json:"trend_score"`
	GrowthPrediction string   `json:"growth_prediction"`
	ViralPotential   string   `json:"viral_potential"`
	BestUseTime      string   `json:"best_use_time"`
	TopRegions       []string `json:"top_regions"`
	Hashtags         []string `json:"recommended_hashtags"`
	ContentTypes     []string `json:"content_categories"`
}

// Analytics aggregates usage statistics across a trending catalog.
type Analytics struct {
	Platform       string         `json:"platform"`
	SoundsAnalyzed int            `json:"total_sounds_analyzed"`
	TotalUsage     int            `json:"total_usage_count"`
	AvgTrendScore  float64        `json:"average_trend_score"`
	TopGenres      map[string]int `json:"top_genres"`
	TopMoods       map[string]int `json:"top_moods"`
	ViralSounds    int            `json:"viral_sounds_count"`
	EmergingSounds int            `json:"emerging_sounds_count"`
}

// Querier is the subset of the research client the sound service needs.
type Querier interface {
	Ask(ctx context.Context, question string) (string, error)
	TrendingSounds(ctx context.Context, query string) ([]perplexity.TrendingSound, error)
	BrandOpportunities(ctx context.Context, query string) ([]perplexity.BrandOpportunity, error)
}

// Service discovers sounds and brand opportunities through the research client.
type Service struct {
	client Querier
}

// NewService creates a sound discovery service.
func NewService(client Querier) *Service {
	return &Service{client: client}
}

// Trending fetches the current trending sounds for a platform. Category and
// region filters are optional; region "global" (or empty) means worldwide.
// A failed or empty vendor response yields the static fallback catalog.
func (s *Service) Trending(ctx context.Context, platform, region, category string, limit int) []Sound {
	if limit <= 0 {
		limit = 10
	}
	if region == "" {
		region = "global"
	}

	categoryFilter := ""
	if category != "" {
		categoryFilter = fmt.Sprintf(" for %s content", category)
	}
	regionFilter := " globally"
	if region != "global" {
		regionFilter = fmt.Sprintf(" in %s", region)
	}

	query := fmt.Sprintf(`Find the top %d trending audio tracks and sounds on %s%s%s in 2024.

For each sound, provide exact details:
- title: exact track/sound name
- artist: creator or artist name
- duration: approximate duration in seconds (integer)
- genre: music genre/style
- mood: one of (Chill, Energetic, Upbeat, Emotional, Funny, Relaxing, Intense)
- viral_potential: one of (High, Medium, Low, Extremely High)
- usage_count: estimated number of uses (integer)
- trend_score: trending score 1-100 (integer)
- hashtags: array of popular hashtags (with #)
- best_content_types: array of content categories this works for
- peak_usage_time: best posting hours (e.g., "18:00-22:00")

Focus on currently viral sounds with accurate, realistic data.`,
		limit, titleCase(platform), categoryFilter, regionFilter)

	records, err := s.client.TrendingSounds(ctx, query)
	if err != nil {
		slog.Warn("trending sounds query failed, using fallback catalog", "platform", platform, "error", err)
		return capSounds(fallbackSounds(platform, category), limit)
	}
	if len(records) == 0 {
		return capSounds(fallbackSounds(platform, category), limit)
	}

	regions := []string{"Global"}
	if region != "global" {
		regions = []string{region}
	}

	sounds := make([]Sound, 0, limit)
	for i, rec := range records {
		if len(sounds) == limit {
			break
		}
		id := fmt.Sprintf("%s_%03d", platformPrefix(platform), i+1)
		sounds = append(sounds, Sound{
			ID:               id,
			Title:            rec.Title,
			Artist:           rec.Artist,
			Duration:         rec.Duration,
			Genre:            rec.Genre,
			Mood:             rec.Mood,
			ViralPotential:   rec.ViralPotential,
			UsageCount:       rec.UsageCount,
			TrendScore:       rec.TrendScore,
			Hashtags:         rec.Hashtags,
			BestContentTypes: rec.BestContentTypes,
			TrendingRegions:  regions,
			PeakUsageTime:    rec.PeakUsageTime,
			PreviewURL:       fmt.Sprintf("https://example.com/preview/%s.mp3", id),
		})
	}
	return sounds
}

// ByMood returns trending sounds matching a mood, case-insensitively.
func (s *Service) ByMood(ctx context.Context, platform, mood string, limit int) []Sound {
	if limit <= 0 {
		limit = 5
	}
	var matched []Sound
	for _, sound := range s.Trending(ctx, platform, "global", "", 50) {
		if strings.EqualFold(sound.Mood, mood) {
			matched = append(matched, sound)
		}
	}
	return capSounds(matched, limit)
}

// ByGenre returns trending sounds matching a genre, case-insensitively.
func (s *Service) ByGenre(ctx context.Context, platform, genre string, limit int) []Sound {
	if limit <= 0 {
		limit = 5
	}
	var matched []Sound
	for _, sound := range s.Trending(ctx, platform, "global", "", 50) {
		if strings.EqualFold(sound.Genre, genre) {
			matched = append(matched, sound)
		}
	}
	return capSounds(matched, limit)
}

// Search matches trending sounds by keyword in title, artist, or hashtags.
func (s *Service) Search(ctx context.Context, platform, keyword string, limit int) []Sound {
	if limit <= 0 {
		limit = 10
	}
	needle := strings.ToLower(keyword)

	var matched []Sound
	for _, sound := range s.Trending(ctx, platform, "global", "", 100) {
		if soundMatches(sound, needle) {
			matched = append(matched, sound)
		}
	}
	return capSounds(matched, limit)
}

func soundMatches(sound Sound, needle string) bool {
	if strings.Contains(strings.ToLower(sound.Title), needle) ||
		strings.Contains(strings.ToLower(sound.Artist), needle) {
		return true
	}
	for _, tag := range sound.Hashtags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Emerging returns sounds that are still small but climbing: usage under 1M
// with a trend score above 75.
func (s *Service) Emerging(ctx context.Context, platform, region string, limit int) []Sound {
	if limit <= 0 {
		limit = 5
	}
	var emerging []Sound
	for _, sound := range s.Trending(ctx, platform, region, "", 50) {
		if isEmerging(sound) {
			emerging = append(emerging, sound)
		}
	}
	return capSounds(emerging, limit)
}

func isEmerging(sound Sound) bool {
	return sound.UsageCount < emergingUsageCap && sound.TrendScore > emergingScoreFloor
}

// Recommendations scores trending sounds against a creator profile: +15 for
// a matching content type, +10 for Extremely High viral potential, +5 for
// High. Highest score first.
func (s *Service) Recommendations(ctx context.Context, platform, category string, limit int) []Sound {
	if limit <= 0 {
		limit = 5
	}

	sounds := s.Trending(ctx, platform, "global", category, 20)
	for i := range sounds {
		score := sounds[i].TrendScore
		for _, ct := range sounds[i].BestContentTypes {
			if strings.EqualFold(ct, category) {
				score += 15
				break
			}
		}
		switch sounds[i].ViralPotential {
		case "Extremely High":
			score += 10
		case "High":
			score += 5
		}
		sounds[i].RecommendationScore = score
	}

	sort.SliceStable(sounds, func(i, j int) bool {
		return sounds[i].RecommendationScore > sounds[j].RecommendationScore
	})
	return capSounds(sounds, limit)
}

// PerformanceFor classifies a sound into a usage tier and growth prediction.
func PerformanceFor(sound Sound) Performance {
	tier := "Emerging"
	if sound.UsageCount > viralUsageFloor {
		tier = "Viral"
	} else if sound.UsageCount > trendingUsageFloor {
		tier = "Trending"
	}

	growth := "Stable"
	if sound.TrendScore > 90 {
		growth = "Rapidly Growing"
	} else if sound.TrendScore > 75 {
		growth = "Steady Growth"
	}

	return Performance{
		SoundID:          sound.ID,
		Tier:             tier,
		UsageCount:       sound.UsageCount,
		TrendScore:       sound.TrendScore,
		GrowthPrediction: growth,
		ViralPotential:   sound.ViralPotential,
		BestUseTime:      sound.PeakUsageTime,
		TopRegions:       sound.TrendingRegions,
		Hashtags:         sound.Hashtags,
		ContentTypes:     sound.BestContentTypes,
	}
}

// UsageAnalytics summarizes the trending catalog for a platform.
func (s *Service) UsageAnalytics(ctx context.Context, platform string) Analytics {
	sounds := s.Trending(ctx, platform, "global", "", 50)

	analytics := Analytics{
		Platform:       platform,
		SoundsAnalyzed: len(sounds),
		TopGenres:      map[string]int{},
		TopMoods:       map[string]int{},
	}

	var scoreSum int
	for _, sound := range sounds {
		analytics.TotalUsage += sound.UsageCount
		scoreSum += sound.TrendScore
		analytics.TopGenres[sound.Genre]++
		analytics.TopMoods[sound.Mood]++
		if sound.ViralPotential == "Extremely High" {
			analytics.ViralSounds++
		}
		if isEmerging(sound) {
			analytics.EmergingSounds++
		}
	}
	if len(sounds) > 0 {
		analytics.AvgTrendScore = float64(scoreSum) / float64(len(sounds))
	}

	analytics.TopGenres = topCounts(analytics.TopGenres, 5)
	analytics.TopMoods = topCounts(analytics.TopMoods, 5)
	return analytics
}

func topCounts(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	top := make(map[string]int, n)
	for _, e := range entries[:n] {
		top[e.key] = e.count
	}
	return top
}

// BrandCollaborations fetches brand partnership opportunities matching a
// creator profile. Every field of every returned record is run through the
// text sanitizer. A failed or empty vendor response yields the per-category
// fallback cards.
func (s *Service) BrandCollaborations(ctx context.Context, category, audience, platform string, limit int) []extract.Brand {
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf(`Find %d brands currently active in influencer marketing that would partner with %s content creators targeting %s on %s.

For each brand, provide exact details:
- name: exact brand name
- fit_reason: why they're good for this niche (1-2 sentences)
- collaboration_types: array of collaboration types (e.g., ["Sponsored Posts", "Product Reviews", "Affiliate Marketing"])
- value_range: estimated partnership value (e.g., "$100-$1,000" or "Product gifting + commission")
- approach: how to contact them (e.g., "Direct email contact", "Apply through influencer portal")

Focus on brands working with micro and mid-tier influencers, providing diverse, realistic opportunities.`,
		limit, category, audience, titleCase(platform))

	records, err := s.client.BrandOpportunities(ctx, query)
	if err != nil {
		slog.Warn("brand opportunities query failed, using fallback cards", "category", category, "error", err)
		return fallbackBrands(category)
	}
	if len(records) == 0 {
		return fallbackBrands(category)
	}

	brands := make([]extract.Brand, 0, limit)
	for _, rec := range records {
		if len(brands) == limit {
			break
		}
		types := make([]string, 0, len(rec.CollaborationTypes))
		for _, ct := range rec.CollaborationTypes {
			types = append(types, extract.Sanitize(ct))
		}
		brands = append(brands, extract.Brand{
			Name:               extract.Sanitize(rec.Name),
			FitReason:          extract.Sanitize(rec.FitReason),
			CollaborationTypes: types,
			ValueRange:         extract.Sanitize(rec.ValueRange),
			Approach:           extract.Sanitize(rec.Approach),
		})
	}
	return brands
}

// MusicBrandPartnerships finds brands that fit a sound's vibe via a prose
// query and the heuristic brand extractor. A failed call yields no records.
func (s *Service) MusicBrandPartnerships(ctx context.Context, sound Sound, platform string) []extract.Brand {
	query := fmt.Sprintf(`Find brands that would be interested in partnering with influencers using %s music with a %s mood for %s content on %s.

Include:
- Music streaming services
- Audio equipment brands
- Lifestyle brands that match the sound's vibe
- Entertainment companies
- Tech brands related to content creation

For each brand, explain why this sound trend would appeal to them.`,
		sound.Genre, sound.Mood, strings.Join(sound.BestContentTypes, ", "), titleCase(platform))

	prose, err := s.client.Ask(ctx, query)
	if err != nil {
		slog.Warn("music brand partnership query failed", "sound", sound.ID, "error", err)
		return nil
	}
	return extract.BrandsFromProse(prose)
}

func capSounds(sounds []Sound, limit int) []Sound {
	if len(sounds) > limit {
		return sounds[:limit]
	}
	return sounds
}

func platformPrefix(platform string) string {
	if len(platform) < 2 {
		return platform
	}
	return platform[:2]
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
