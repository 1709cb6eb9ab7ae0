package qloo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.baseURL = server.URL
	return client
}

func TestInsightsParams(t *testing.T) {
	var gotQuery map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/insights/" {
			t.Errorf("path = %q, want /v2/insights/", r.URL.Path)
		}
		if key := r.Header.Get("X-Api-Key"); key != "test-key" {
			t.Errorf("X-Api-Key = %q", key)
		}
		gotQuery = make(map[string]string)
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		json.NewEncoder(w).Encode(InsightsResponse{})
	})

	_, err := client.Insights(context.Background(), InsightsQuery{
		EntityType: "brand",
		Filters:    map[string][]string{"tags": {"urn:tag:genre:fitness", "urn:tag:genre:wellness"}},
		Signals:    map[string][]string{"demographics.age": {"25_to_34"}},
		Take:       5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"filter.type":             "urn:entity:brand",
		"filter.tags":             "urn:tag:genre:fitness,urn:tag:genre:wellness",
		"signal.demographics.age": "25_to_34",
		"take":                    "5",
		"offset":                  "0",
	}
	if !reflect.DeepEqual(gotQuery, want) {
		t.Errorf("query = %v, want %v", gotQuery, want)
	}
}

func TestTrendingInsightsBias(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if bias := r.URL.Query().Get("signal.bias.trends"); bias != "true" {
			t.Errorf("signal.bias.trends = %q, want true", bias)
		}
		json.NewEncoder(w).Encode(InsightsResponse{})
	})

	if _, err := client.TrendingInsights(context.Background(), "artist", nil, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsightsServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	if _, err := client.Insights(context.Background(), InsightsQuery{EntityType: "movie"}); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestCountryInsights(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/insights/geography" {
			t.Errorf("%s %s, want POST /insights/geography", r.Method, r.URL.Path)
		}
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["content_category"] != "fitness" || payload["audience_type"] != "young adults" {
			t.Errorf("payload = %v", payload)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"countries": map[string]any{
				"USA": map[string]any{"relevance_score": 0.91},
			},
		})
	})

	insights := client.CountryInsights(context.Background(), "fitness", "young adults")
	if got := insights.Countries["USA"].RelevanceScore; got != 0.91 {
		t.Errorf("USA relevance = %v, want 0.91", got)
	}
}

func TestCountryInsightsResultsFormat(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"country_code": "JPN", "country_name": "Japan", "relevance_score": 0.55},
				{"relevance_score": 0.99},
			},
		})
	})

	insights := client.CountryInsights(context.Background(), "tech", "teens")
	if len(insights.Countries) != 1 {
		t.Fatalf("countries = %v, want only JPN", insights.Countries)
	}
	if got := insights.Countries["JPN"]; got.RelevanceScore != 0.55 || got.Name != "Japan" {
		t.Errorf("JPN = %+v", got)
	}
}

func TestCountryInsightsFallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	insights := client.CountryInsights(context.Background(), "fashion", "teens")
	if len(insights.Countries) != 5 {
		t.Fatalf("fallback countries = %d, want 5", len(insights.Countries))
	}
	if got := insights.Countries["USA"].RelevanceScore; got != 0.85 {
		t.Errorf("USA fallback relevance = %v, want 0.85", got)
	}
}

func TestTrendingTopics(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/trends/region" {
			t.Errorf("%s %s, want POST /trends/region", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(RegionTrends{
			CountryName:    "United States",
			TrendingTopics: []string{"Cold Plunges", "Run Clubs"},
		})
	})

	trends := client.TrendingTopics(context.Background(), "USA", "fitness", "young adults")
	if trends.CountryName != "United States" {
		t.Errorf("country name = %q", trends.CountryName)
	}
	if len(trends.TrendingTopics) != 2 || trends.TrendingTopics[0] != "Cold Plunges" {
		t.Errorf("topics = %v", trends.TrendingTopics)
	}
}

func TestTrendingTopicsCategoryFallback(t *testing.T) {
	tests := []struct {
		category  string
		wantFirst string
	}{
		{"fashion", "Sustainable Fashion"},
		{"Tech", "AI Tools"},
		{"fitness", "HIIT Workouts"},
		{"cooking", "Visual Storytelling"},
	}

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(RegionTrends{})
	})

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			trends := client.TrendingTopics(context.Background(), "DEU", tt.category, "professionals")
			if trends.CountryName != "Germany" {
				t.Errorf("country name = %q, want Germany", trends.CountryName)
			}
			if len(trends.TrendingTopics) == 0 || trends.TrendingTopics[0] != tt.wantFirst {
				t.Errorf("topics = %v, want first %q", trends.TrendingTopics, tt.wantFirst)
			}
		})
	}
}

func TestTrendingTopicsRequestFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	trends := client.TrendingTopics(context.Background(), "XYZ", "fitness", "teens")
	if trends.CountryName != "XYZ" {
		t.Errorf("country name = %q, want code echo", trends.CountryName)
	}
	if len(trends.TrendingTopics) != 10 {
		t.Errorf("generic topics = %d, want 10", len(trends.TrendingTopics))
	}
}
