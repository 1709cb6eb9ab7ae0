package sounds

import (
	"fmt"
	"strings"

	"github.com/creatorlens/influencer-studio/internal/extract"
)

// fallbackSounds is the minimal static catalog served when the vendor is
// unavailable or returns nothing.
func fallbackSounds(platform, category string) []Sound {
	label := "General"
	if category != "" {
		label = titleCase(category)
	}
	tag := "#" + strings.ToLower(label)
	prefix := platformPrefix(platform)
	contentTypes := []string{"General"}
	if category != "" {
		contentTypes = []string{label}
	}

	return []Sound{
		{
			ID:               prefix + "_fallback_001",
			Title:            fmt.Sprintf("Trending %s Sound", label),
			Artist:           "Popular Artist",
			Duration:         20,
			Genre:            "Mixed",
			Mood:             "Upbeat",
			ViralPotential:   "Medium",
			UsageCount:       500_000,
			TrendScore:       75,
			Hashtags:         []string{"#trending", "#viral", tag},
			BestContentTypes: contentTypes,
			TrendingRegions:  []string{"Global"},
			PeakUsageTime:    "18:00-22:00",
			PreviewURL:       fmt.Sprintf("https://example.com/preview/%s_fallback_001.mp3", prefix),
		},
		{
			ID:               prefix + "_fallback_002",
			Title:            fmt.Sprintf("Popular %s Beat", label),
			Artist:           "Trending Creator",
			Duration:         15,
			Genre:            "Electronic",
			Mood:             "Energetic",
			ViralPotential:   "Medium",
			UsageCount:       300_000,
			TrendScore:       70,
			Hashtags:         []string{"#music", "#beat", tag},
			BestContentTypes: contentTypes,
			TrendingRegions:  []string{"Global"},
			PeakUsageTime:    "16:00-20:00",
			PreviewURL:       fmt.Sprintf("https://example.com/preview/%s_fallback_002.mp3", prefix),
		},
	}
}

// fallbackBrands returns the static per-category brand cards.
func fallbackBrands(category string) []extract.Brand {
	switch strings.ToLower(category) {
	case "fitness":
		return []extract.Brand{
			{
				Name:               "Gymshark",
				FitReason:          "Leading fitness apparel brand with strong influencer program",
				CollaborationTypes: []string{"Sponsored posts", "Affiliate marketing", "Product gifting"},
				ValueRange:         "$100-$5,000",
				Approach:           "Apply through their influencer portal",
			},
			{
				Name:               "MyProtein",
				FitReason:          "Sports nutrition brand actively seeking fitness influencers",
				CollaborationTypes: []string{"Discount codes", "Product reviews", "Workout videos"},
				ValueRange:         "$50-$2,000",
				Approach:           "Contact their marketing team directly",
			},
		}
	case "fashion":
		return []extract.Brand{
			{
				Name:               "Shein",
				FitReason:          "Fast fashion brand with extensive influencer partnerships",
				CollaborationTypes: []string{"Try-on hauls", "Styling videos", "Discount codes"},
				ValueRange:         "$100-$3,000",
				Approach:           "Apply through Shein influencer program",
			},
			{
				Name:               "PrettyLittleThing",
				FitReason:          "Trendy fashion brand targeting young demographics",
				CollaborationTypes: []string{"OOTD posts", "Event collaborations", "Product gifting"},
				ValueRange:         "$200-$5,000",
				Approach:           "Reach out via social media or influencer platform",
			},
		}
	case "tech":
		return []extract.Brand{
			{
				Name:               "Razer",
				FitReason:          "Gaming and tech brand with active creator partnerships",
				CollaborationTypes: []string{"Product reviews", "Gaming content", "Tech tutorials"},
				ValueRange:         "$500-$10,000",
				Approach:           "Apply through Razer Creator Program",
			},
			{
				Name:               "Anker",
				FitReason:          "Consumer electronics brand seeking tech reviewers",
				CollaborationTypes: []string{"Product testing", "Unboxing videos", "Tech tips"},
				ValueRange:         "$100-$2,000",
				Approach:           "Contact through PR agency or direct email",
			},
		}
	default:
		return []extract.Brand{
			{
				Name:               "Generic Brand Opportunity",
				FitReason:          fmt.Sprintf("Brands in the %s space often seek influencer partnerships", category),
				CollaborationTypes: []string{"Sponsored content", "Product placement", "Brand mentions"},
				ValueRange:         "Varies by brand and audience size",
				Approach:           "Research brands in your niche and reach out directly",
			},
		}
	}
}
