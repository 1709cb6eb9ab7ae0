package sounds

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/creatorlens/influencer-studio/internal/perplexity"
)

var errVendorDown = errors.New("vendor unreachable")

type fakeQuerier struct {
	prose     string
	proseErr  error
	sounds    []perplexity.TrendingSound
	soundsErr error
	brands    []perplexity.BrandOpportunity
	brandsErr error
}

func (f *fakeQuerier) Ask(ctx context.Context, question string) (string, error) {
	return f.prose, f.proseErr
}

func (f *fakeQuerier) TrendingSounds(ctx context.Context, query string) ([]perplexity.TrendingSound, error) {
	return f.sounds, f.soundsErr
}

func (f *fakeQuerier) BrandOpportunities(ctx context.Context, query string) ([]perplexity.BrandOpportunity, error) {
	return f.brands, f.brandsErr
}

func soundRecord(title string, usage, score int) perplexity.TrendingSound {
	return perplexity.TrendingSound{
		Title:            title,
		Artist:           "Artist",
		Duration:         20,
		Genre:            "Pop",
		Mood:             "Upbeat",
		ViralPotential:   "High",
		UsageCount:       usage,
		TrendScore:       score,
		Hashtags:         []string{"#pop"},
		BestContentTypes: []string{"Dance"},
		PeakUsageTime:    "18:00-22:00",
	}
}

func TestTrendingAssignsIDs(t *testing.T) {
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{
		soundRecord("First", 1_000_000, 80),
		soundRecord("Second", 2_000_000, 90),
	}}

	got := NewService(fake).Trending(context.Background(), "tiktok", "global", "", 10)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "ti_001" || got[1].ID != "ti_002" {
		t.Errorf("ids = %q, %q, want ti_001, ti_002", got[0].ID, got[1].ID)
	}
	if got[0].TrendingRegions[0] != "Global" {
		t.Errorf("regions = %v, want [Global]", got[0].TrendingRegions)
	}
	if !strings.HasSuffix(got[0].PreviewURL, "/ti_001.mp3") {
		t.Errorf("preview url = %q", got[0].PreviewURL)
	}
}

func TestTrendingRegionPropagates(t *testing.T) {
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{soundRecord("First", 100, 50)}}

	got := NewService(fake).Trending(context.Background(), "instagram", "Germany", "", 10)
	if got[0].TrendingRegions[0] != "Germany" {
		t.Errorf("regions = %v, want [Germany]", got[0].TrendingRegions)
	}
	if got[0].ID != "in_001" {
		t.Errorf("id = %q, want in_001", got[0].ID)
	}
}

func TestTrendingFallbackCatalog(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeQuerier
	}{
		{"vendor error", &fakeQuerier{soundsErr: errVendorDown}},
		{"empty response", &fakeQuerier{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewService(tt.fake).Trending(context.Background(), "tiktok", "global", "fitness", 10)
			if len(got) != 2 {
				t.Fatalf("fallback catalog = %d sounds, want 2", len(got))
			}
			if got[0].Title != "Trending Fitness Sound" {
				t.Errorf("title = %q", got[0].Title)
			}
			if got[0].ID != "ti_fallback_001" {
				t.Errorf("id = %q", got[0].ID)
			}
			if got[0].Hashtags[2] != "#fitness" {
				t.Errorf("hashtags = %v", got[0].Hashtags)
			}
		})
	}
}

func TestByMood(t *testing.T) {
	upbeat := soundRecord("Upbeat Track", 100, 50)
	chill := soundRecord("Chill Track", 100, 50)
	chill.Mood = "Chill"
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{upbeat, chill}}

	got := NewService(fake).ByMood(context.Background(), "tiktok", "chill", 5)
	if len(got) != 1 || got[0].Title != "Chill Track" {
		t.Errorf("ByMood = %v", got)
	}
}

func TestSearchMatchesHashtags(t *testing.T) {
	rec := soundRecord("Morning Jam", 100, 50)
	rec.Hashtags = []string{"#GymLife"}
	other := soundRecord("Other", 100, 50)
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{rec, other}}

	got := NewService(fake).Search(context.Background(), "tiktok", "gymlife", 10)
	if len(got) != 1 || got[0].Title != "Morning Jam" {
		t.Errorf("Search = %v", got)
	}
}

func TestEmerging(t *testing.T) {
	tests := []struct {
		name  string
		usage int
		score int
		want  bool
	}{
		{"small and climbing", 900_000, 80, true},
		{"usage at cap", 1_000_000, 80, false},
		{"score at floor", 900_000, 75, false},
		{"large and climbing", 5_000_000, 95, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeQuerier{sounds: []perplexity.TrendingSound{soundRecord("S", tt.usage, tt.score)}}
			got := NewService(fake).Emerging(context.Background(), "tiktok", "global", 5)
			if (len(got) == 1) != tt.want {
				t.Errorf("emerging(usage=%d, score=%d) = %v, want %v", tt.usage, tt.score, got, tt.want)
			}
		})
	}
}

func TestRecommendationsScoring(t *testing.T) {
	match := soundRecord("Matching", 100, 60)
	match.BestContentTypes = []string{"Fitness"}
	match.ViralPotential = "Extremely High"
	plain := soundRecord("Plain", 100, 70)
	plain.ViralPotential = "Medium"
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{plain, match}}

	got := NewService(fake).Recommendations(context.Background(), "tiktok", "fitness", 5)
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	// 60 + 15 (content type) + 10 (Extremely High) = 85 beats plain 70.
	if got[0].Title != "Matching" || got[0].RecommendationScore != 85 {
		t.Errorf("top recommendation = %q score %d, want Matching 85", got[0].Title, got[0].RecommendationScore)
	}
	if got[1].RecommendationScore != 70 {
		t.Errorf("plain score = %d, want 70", got[1].RecommendationScore)
	}
}

func TestPerformanceFor(t *testing.T) {
	tests := []struct {
		name       string
		usage      int
		score      int
		wantTier   string
		wantGrowth string
	}{
		{"viral rapid", 3_000_000, 95, "Viral", "Rapidly Growing"},
		{"trending steady", 800_000, 80, "Trending", "Steady Growth"},
		{"emerging stable", 100_000, 60, "Emerging", "Stable"},
		{"usage boundary", 2_000_000, 91, "Trending", "Rapidly Growing"},
		{"score boundary", 2_000_001, 90, "Viral", "Steady Growth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perf := PerformanceFor(Sound{ID: "ti_001", UsageCount: tt.usage, TrendScore: tt.score})
			if perf.Tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", perf.Tier, tt.wantTier)
			}
			if perf.GrowthPrediction != tt.wantGrowth {
				t.Errorf("growth = %q, want %q", perf.GrowthPrediction, tt.wantGrowth)
			}
		})
	}
}

func TestUsageAnalytics(t *testing.T) {
	viral := soundRecord("Viral", 5_000_000, 95)
	viral.ViralPotential = "Extremely High"
	viral.Genre = "Hyperpop"
	emerging := soundRecord("Emerging", 800_000, 80)
	fake := &fakeQuerier{sounds: []perplexity.TrendingSound{viral, emerging}}

	got := NewService(fake).UsageAnalytics(context.Background(), "tiktok")
	if got.SoundsAnalyzed != 2 || got.TotalUsage != 5_800_000 {
		t.Errorf("analytics = %+v", got)
	}
	if got.AvgTrendScore != 87.5 {
		t.Errorf("avg trend score = %v, want 87.5", got.AvgTrendScore)
	}
	if got.ViralSounds != 1 || got.EmergingSounds != 1 {
		t.Errorf("viral = %d emerging = %d, want 1 and 1", got.ViralSounds, got.EmergingSounds)
	}
	if got.TopGenres["Hyperpop"] != 1 || got.TopGenres["Pop"] != 1 {
		t.Errorf("genres = %v", got.TopGenres)
	}
}

func TestBrandCollaborationsSanitizes(t *testing.T) {
	fake := &fakeQuerier{brands: []perplexity.BrandOpportunity{
		{
			Name:               "<strong>Gymshark</strong>",
			FitReason:          "**Strong** influencer program [1]",
			CollaborationTypes: []string{"Sponsored <b>posts</b>"},
			ValueRange:         "$100-$5,000",
			Approach:           "Apply through their portal",
		},
	}}

	got := NewService(fake).BrandCollaborations(context.Background(), "fitness", "women 20-35", "tiktok", 5)
	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Name != "Gymshark" {
		t.Errorf("name = %q, want sanitized Gymshark", got[0].Name)
	}
	if got[0].FitReason != "Strong influencer program" {
		t.Errorf("fit reason = %q", got[0].FitReason)
	}
	if got[0].CollaborationTypes[0] != "Sponsored posts" {
		t.Errorf("collab types = %v", got[0].CollaborationTypes)
	}
}

func TestBrandCollaborationsFallback(t *testing.T) {
	fake := &fakeQuerier{brandsErr: errVendorDown}

	got := NewService(fake).BrandCollaborations(context.Background(), "tech", "gamers", "tiktok", 5)
	if len(got) != 2 || got[0].Name != "Razer" {
		t.Errorf("fallback brands = %v", got)
	}

	generic := NewService(fake).BrandCollaborations(context.Background(), "cooking", "home cooks", "tiktok", 5)
	if len(generic) != 1 || generic[0].Name != "Generic Brand Opportunity" {
		t.Errorf("generic fallback = %v", generic)
	}
}

func TestMusicBrandPartnerships(t *testing.T) {
	fake := &fakeQuerier{prose: `Here are some options:
1. Spotify has a strong brand fit for creators working with upbeat audiences through sponsored placements. Estimated value $500-$2,000. Contact via email.
2. Bose would be a good audience partner for review content featuring premium audio. Apply through official website.`}

	sound := Sound{ID: "ti_001", Genre: "Pop", Mood: "Upbeat", BestContentTypes: []string{"Dance"}}
	got := NewService(fake).MusicBrandPartnerships(context.Background(), sound, "tiktok")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Spotify" {
		t.Errorf("first brand = %q, want Spotify", got[0].Name)
	}
}

func TestMusicBrandPartnershipsFailure(t *testing.T) {
	fake := &fakeQuerier{proseErr: errVendorDown}
	got := NewService(fake).MusicBrandPartnerships(context.Background(), Sound{}, "tiktok")
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
