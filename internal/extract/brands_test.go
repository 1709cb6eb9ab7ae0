package extract

import "testing"

func TestBrandsFromProse(t *testing.T) {
	prose := "Here are some good partners. " +
		"1. Nike - Nike is a great fit for fitness audiences and offers $500-$2,000 per post via their email team. " +
		"2. Gymshark Apparel Co would be a strong brand partner for sponsored posts and product reviews, " +
		"reachable through their influencer portal, paying $1,000+ per campaign."

	brands := BrandsFromProse(prose)
	if len(brands) != 2 {
		t.Fatalf("got %d brands, want 2: %+v", len(brands), brands)
	}

	nike := brands[0]
	if nike.Name != "Nike" {
		t.Errorf("Name = %q, want Nike", nike.Name)
	}
	if nike.ValueRange != "$500-$2,000" {
		t.Errorf("ValueRange = %q, want $500-$2,000", nike.ValueRange)
	}
	if nike.Approach != "Direct email contact" {
		t.Errorf("Approach = %q, want Direct email contact", nike.Approach)
	}

	gym := brands[1]
	if gym.Name != "Gymshark Apparel Co" {
		t.Errorf("Name = %q, want Gymshark Apparel Co", gym.Name)
	}
	if gym.ValueRange != "$1,000+" {
		t.Errorf("ValueRange = %q, want $1,000+", gym.ValueRange)
	}
	if gym.Approach != "Apply through official website" {
		t.Errorf("Approach = %q, want Apply through official website", gym.Approach)
	}
	if len(gym.CollaborationTypes) == 0 || gym.CollaborationTypes[0] != "Sponsored Posts" {
		t.Errorf("CollaborationTypes = %v, want Sponsored Posts first", gym.CollaborationTypes)
	}
}

func TestBrandsFromProseFallback(t *testing.T) {
	tests := []struct {
		name  string
		prose string
	}{
		{"empty response", ""},
		{"no numbered sections", "brands love influencers but none are listed here"},
		{"segments too short", "1. hi. 2. yo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brands := BrandsFromProse(tt.prose)
			if len(brands) != 1 {
				t.Fatalf("got %d brands, want 1 fallback", len(brands))
			}
			if brands[0].Name != fallbackBrand.Name {
				t.Errorf("Name = %q, want fallback %q", brands[0].Name, fallbackBrand.Name)
			}
		})
	}
}

func TestBrandNameValidation(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		want  bool
	}{
		{"valid", "Nike", true},
		{"too short", "Ab", false},
		{"too long", "An Extremely Long Brand Name That Keeps Going On", false},
		{"banned token why", "Why Brands Work", false},
		{"banned token contact", "Contact Sales", false},
		{"banned token style leak", "style Brand", false},
		{"multi word valid", "Fashion Forward Co", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validBrandName(tt.brand); got != tt.want {
				t.Errorf("validBrandName(%q) = %v, want %v", tt.brand, got, tt.want)
			}
		})
	}
}

func TestExtractCollabTypes(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    []string
	}{
		{
			name:    "no keywords default",
			segment: "a lifestyle label seeking creators",
			want:    []string{"Sponsored Content"},
		},
		{
			name:    "matched keywords in table order capped at three",
			segment: "offers sponsored affiliate review placement deals",
			want:    []string{"Sponsored Posts", "Affiliate Marketing", "Product Reviews"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCollabTypes(tt.segment)
			if len(got) != len(tt.want) {
				t.Fatalf("extractCollabTypes() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("type[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractValueRange(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"dollar range", "pays $1,000-$5,000 per post", "$1,000-$5,000"},
		{"dollar floor", "budgets of $500+ available", "$500+"},
		{"rupee range", "offers ₹10,000-₹50,000 monthly", "₹10,000-₹50,000"},
		{"no amount", "compensation varies by campaign", "Contact for details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractValueRange(tt.segment); got != tt.want {
				t.Errorf("extractValueRange(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}
