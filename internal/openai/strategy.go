package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// ViralPrediction scores a content idea's viral potential.
type ViralPrediction struct {
	ViralScore           int      `json:"viral_score"`
	Reasons              []string `json:"reasons"`
	Improvements         []string `json:"improvements"`
	Timing               string   `json:"timing"`
	HashtagStrategy      []string `json:"hashtag_strategy"`
	EngagementPrediction string   `json:"engagement_prediction"`
}

// PostingTimes is the recommended posting schedule for an audience.
type PostingTimes struct {
	BestDays               []string `json:"best_days"`
	OptimalHours           []string `json:"optimal_hours"`
	TimezoneConsiderations string   `json:"timezone_considerations"`
	ContentFrequency       string   `json:"content_frequency"`
	SeasonalAdjustments    string   `json:"seasonal_adjustments"`
}

// fallbackViralPrediction is served when the prediction call or its JSON fails.
var fallbackViralPrediction = ViralPrediction{
	ViralScore:           50,
	Reasons:              []string{"Analysis unavailable"},
	Improvements:         []string{"Try again later"},
	Timing:               "Peak engagement hours",
	HashtagStrategy:      []string{"#trending", "#content"},
	EngagementPrediction: "Moderate",
}

var fallbackHashtags = []string{"content", "creator", "trending", "social", "engagement"}

var fallbackPostingTimes = PostingTimes{
	BestDays:               []string{"Tuesday", "Wednesday", "Thursday"},
	OptimalHours:           []string{"9:00", "14:00", "19:00"},
	TimezoneConsiderations: "Focus on primary audience timezone",
	ContentFrequency:       "1-2 posts per day",
	SeasonalAdjustments:    "Adjust for holidays and events",
}

// GrowthStrategy analyzes a creator profile and returns audience growth
// recommendations as prose. Failures yield an apology string, never an error.
func (c *Client) GrowthStrategy(ctx context.Context, profile map[string]string) string {
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")

	prompt := fmt.Sprintf(`As an expert social media growth strategist, analyze this influencer profile and provide detailed recommendations for audience growth:

Profile Data:
%s

Provide a comprehensive analysis including:
1. Current strengths and opportunities
2. Target audience expansion strategies
3. Content optimization recommendations
4. Geographic expansion opportunities
5. Collaboration and partnership suggestions
6. Specific tactics for the next 90 days

Format your response with clear headings and actionable bullet points.`, profileJSON)

	content, err := c.complete(ctx, modelGPT4,
		"You are an expert social media growth strategist with deep knowledge of audience development.",
		prompt, 1500, 0.7)
	if err != nil {
		slog.Warn("growth strategy request failed", "error", err)
		return "Sorry, I couldn't generate the audience growth analysis at this time."
	}
	return content
}

// ContentCalendar generates a content calendar from trending topics and
// audience data. Failures yield an apology string, never an error.
func (c *Client) ContentCalendar(ctx context.Context, trends []string, audience map[string]string, timeframe string) string {
	if timeframe == "" {
		timeframe = "monthly"
	}
	audienceJSON, _ := json.MarshalIndent(audience, "", "  ")

	prompt := fmt.Sprintf(`Create a %s content calendar for an influencer with this audience data:
%s

Incorporate these trending topics: %s

For each content piece, include:
- Content type (post, story, reel, etc.)
- Topic/theme
- Key message
- Best posting time
- Relevant hashtags
- Engagement strategy

Format as a clear, actionable calendar that the influencer can implement immediately.`,
		timeframe, audienceJSON, joinCapped(trends, 10))

	content, err := c.complete(ctx, modelGPT4,
		"You are an expert content strategist specializing in social media calendar planning.",
		prompt, 2000, 0.8)
	if err != nil {
		slog.Warn("content calendar request failed", "error", err)
		return "Sorry, I couldn't generate the content calendar at this time."
	}
	return content
}

// CompetitorLandscape analyzes the competitive landscape for a niche and
// region. Failures yield an apology string, never an error.
func (c *Client) CompetitorLandscape(ctx context.Context, niche, region string) string {
	if region == "" {
		region = "global"
	}

	prompt := fmt.Sprintf(`Conduct a competitive landscape analysis for the %s niche in the %s market.

Include:
1. Key player categories and archetypes
2. Content gaps and opportunities
3. Emerging trends in this space
4. Differentiation strategies
5. Audience behavior patterns
6. Monetization approaches being used
7. Recommended positioning strategies

Focus on actionable insights an influencer can use to stand out in this market.`, niche, region)

	content, err := c.complete(ctx, modelGPT4,
		"You are an expert market research analyst specializing in influencer marketing and competitive analysis.",
		prompt, 1500, 0.7)
	if err != nil {
		slog.Warn("competitor landscape request failed", "error", err)
		return "Sorry, I couldn't generate the competitive analysis at this time."
	}
	return content
}

// PredictViralPotential scores a content idea against the audience and
// current trends. A failed call or unparseable completion yields the canned
// moderate prediction, never an error.
func (c *Client) PredictViralPotential(ctx context.Context, contentIdea string, audience map[string]string, trends []string) ViralPrediction {
	audienceJSON, _ := json.Marshal(audience)

	prompt := fmt.Sprintf(`Analyze this content idea for viral potential:
Content Idea: %q

Target Audience: %s
Current Trends: %s

Provide analysis in JSON format with these fields:
{
    "viral_score": (number 1-100),
    "reasons": [list of reasons for the score],
    "improvements": [list of suggested improvements],
    "timing": "best time to post this content",
    "hashtag_strategy": [recommended hashtags],
    "engagement_prediction": "predicted engagement level"
}

Return ONLY the JSON object, no other text.`, contentIdea, audienceJSON, joinCapped(trends, 10))

	content, err := c.complete(ctx, modelGPT35,
		"You are an expert viral content analyst with deep understanding of social media algorithms.",
		prompt, 800, 0.6)
	if err != nil {
		slog.Warn("viral prediction request failed", "error", err)
		return fallbackViralPrediction
	}

	raw, err := extractJSON(content)
	if err != nil {
		slog.Warn("viral prediction returned no JSON", "error", err)
		return fallbackViralPrediction
	}

	var prediction ViralPrediction
	if err := json.Unmarshal(raw, &prediction); err != nil {
		slog.Warn("viral prediction JSON did not parse", "error", err)
		return fallbackViralPrediction
	}
	return prediction
}

// HashtagStrategy generates recommended hashtags for a topic and audience.
// Failures yield a generic hashtag list, never an error.
func (c *Client) HashtagStrategy(ctx context.Context, contentTopic, targetAudience, region string) []string {
	if region == "" {
		region = "global"
	}

	prompt := fmt.Sprintf(`Generate an optimized hashtag strategy for:
Topic: %s
Audience: %s
Region: %s

Include a mix of:
- High-volume popular hashtags
- Medium-volume niche hashtags
- Low-competition branded hashtags
- Location-based hashtags (if relevant)

Return ONLY a JSON array of hashtag strings (without #), nothing else.
Example: ["contentcreator", "trending", "lifestyle"]`, contentTopic, targetAudience, region)

	content, err := c.complete(ctx, modelGPT35,
		"You are an expert hashtag strategist with deep knowledge of social media algorithms.",
		prompt, 400, 0.7)
	if err != nil {
		slog.Warn("hashtag strategy request failed", "error", err)
		return fallbackHashtags
	}

	raw, err := extractJSON(content)
	if err != nil {
		slog.Warn("hashtag strategy returned no JSON", "error", err)
		return fallbackHashtags
	}

	var hashtags []string
	if err := json.Unmarshal(raw, &hashtags); err != nil {
		slog.Warn("hashtag strategy JSON did not parse", "error", err)
		return fallbackHashtags
	}
	return hashtags
}

// OptimalPostingTimes recommends a posting schedule for the audience and
// content type. Failures yield the canned schedule, never an error.
func (c *Client) OptimalPostingTimes(ctx context.Context, demographics map[string]string, contentType string) PostingTimes {
	demographicsJSON, _ := json.Marshal(demographics)

	prompt := fmt.Sprintf(`Analyze optimal posting times for this audience and content type:

Audience Demographics: %s
Content Type: %s

Consider factors like:
- Time zones and geographic distribution
- Age group behavior patterns
- Content type engagement patterns
- Day of week preferences

Return analysis in JSON format:
{
    "best_days": [list of best days],
    "optimal_hours": [list of optimal hours in 24h format],
    "timezone_considerations": "timezone strategy",
    "content_frequency": "recommended posting frequency",
    "seasonal_adjustments": "seasonal considerations"
}

Return ONLY the JSON object.`, demographicsJSON, contentType)

	content, err := c.complete(ctx, modelGPT35,
		"You are an expert social media timing strategist with deep knowledge of audience behavior patterns.",
		prompt, 600, 0.6)
	if err != nil {
		slog.Warn("posting times request failed", "error", err)
		return fallbackPostingTimes
	}

	raw, err := extractJSON(content)
	if err != nil {
		slog.Warn("posting times returned no JSON", "error", err)
		return fallbackPostingTimes
	}

	var times PostingTimes
	if err := json.Unmarshal(raw, &times); err != nil {
		slog.Warn("posting times JSON did not parse", "error", err)
		return fallbackPostingTimes
	}
	return times
}

func joinCapped(items []string, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, ", ")
}
