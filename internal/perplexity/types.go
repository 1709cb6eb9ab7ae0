package perplexity

import "context"

// TrendingSound is one schema-constrained trending-audio record.
type TrendingSound struct {
	Title            string   `json:"title"`
	Artist           string   `json:"artist"`
	Duration         int      `json:"duration"`
	Genre            string   `json:"genre"`
	Mood             string   `json:"mood"`
	ViralPotential   string   `json:"viral_potential"`
	UsageCount       int      `json:"usage_count"`
	TrendScore       int      `json:"trend_score"`
	Hashtags         []string `json:"hashtags"`
	BestContentTypes []string `json:"best_content_types"`
	PeakUsageTime    string   `json:"peak_usage_time"`
}

// BrandOpportunity is one schema-constrained brand-collaboration record.
type BrandOpportunity struct {
	Name               string   `json:"name"`
	FitReason          string   `json:"fit_reason"`
	CollaborationTypes []string `json:"collaboration_types"`
	ValueRange         string   `json:"value_range"`
	Approach           string   `json:"approach"`
}

// Competitor is one schema-constrained creator record.
type Competitor struct {
	Name          string `json:"name"`
	Platform      string `json:"platform"`
	Followers     string `json:"followers"`
	ContentStyle  string `json:"content_style"`
	SuccessFactor string `json:"success_factor"`
}

// GlobalTrend is one schema-constrained trend record.
type GlobalTrend struct {
	Trend           string   `json:"trend"`
	Description     string   `json:"description"`
	Regions         []string `json:"regions"`
	EngagementScore int      `json:"engagement_score"`
}

type trendingSoundsResponse struct {
	Sounds []TrendingSound `json:"sounds"`
}

type brandOpportunitiesResponse struct {
	Brands []BrandOpportunity `json:"brands"`
}

type competitorAnalysisResponse struct {
	Competitors []Competitor `json:"competitors"`
}

type trendsAnalysisResponse struct {
	Trends []GlobalTrend `json:"trends"`
}

// Competitors runs a schema-constrained query for creator records.
func (c *Client) Competitors(ctx context.Context, query string) ([]Competitor, error) {
	var resp competitorAnalysisResponse
	if err := c.AskStructured(ctx, query, competitorSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Competitors, nil
}

// GlobalTrends runs a schema-constrained query for trend records.
func (c *Client) GlobalTrends(ctx context.Context, query string) ([]GlobalTrend, error) {
	var resp trendsAnalysisResponse
	if err := c.AskStructured(ctx, query, trendsSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Trends, nil
}

// TrendingSounds runs a schema-constrained query for sound records.
func (c *Client) TrendingSounds(ctx context.Context, query string) ([]TrendingSound, error) {
	var resp trendingSoundsResponse
	if err := c.AskStructured(ctx, query, soundsSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Sounds, nil
}

// BrandOpportunities runs a schema-constrained query for brand records.
func (c *Client) BrandOpportunities(ctx context.Context, query string) ([]BrandOpportunity, error) {
	var resp brandOpportunitiesResponse
	if err := c.AskStructured(ctx, query, brandsSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}
