package qloo

// Entity is one recommended entity from the v2 insights API.
type Entity struct {
	EntityID string  `json:"entity_id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Subtype  string  `json:"subtype"`
	Tags     []Tag   `json:"tags"`
	Score    float64 `json:"score"`
}

// Tag is a taste tag attached to an entity.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// InsightsResponse is the v2 insights response envelope.
type InsightsResponse struct {
	Results struct {
		Entities []Entity `json:"entities"`
	} `json:"results"`
}

// TagsResponse is the v2 tags response envelope.
type TagsResponse struct {
	Results []Tag `json:"results"`
}

// Audience is one demographic audience segment.
type Audience struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AudiencesResponse is the v2 audiences response envelope.
type AudiencesResponse struct {
	Results []Audience `json:"results"`
}

// CountryScore is the per-country relevance for a content category.
type CountryScore struct {
	RelevanceScore float64 `json:"relevance_score"`
	Name           string  `json:"name,omitempty"`
}

// CountryInsights maps ISO-3 country codes to relevance scores.
type CountryInsights struct {
	Countries map[string]CountryScore `json:"countries"`
}

// RegionTrends is the trending topic list for one country.
type RegionTrends struct {
	CountryCode    string   `json:"country_code"`
	CountryName    string   `json:"country_name"`
	TrendingTopics []string `json:"trending_topics"`
}
