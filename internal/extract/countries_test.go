package extract

import "testing"

func TestCountryScores(t *testing.T) {
	tests := []struct {
		name  string
		prose string
		want  map[string]float64
	}{
		{
			name:  "colon separated",
			prose: "USA: 0.85\nCanada: 0.70\nIndia: 0.92",
			want:  map[string]float64{"USA": 0.85, "CAN": 0.70, "IND": 0.92},
		},
		{
			name:  "dash separated",
			prose: "Germany - 0.65\nFrance - 0.60",
			want:  map[string]float64{"DEU": 0.65, "FRA": 0.60},
		},
		{
			name:  "space separated",
			prose: "Japan 0.55\nBrazil 0.75",
			want:  map[string]float64{"JPN": 0.55, "BRA": 0.75},
		},
		{
			name:  "synonyms map to canonical code",
			prose: "United States: 0.9\nBritain: 0.8\nSouth Africa: 0.5",
			want:  map[string]float64{"USA": 0.9, "GBR": 0.8, "ZAF": 0.5},
		},
		{
			name:  "case insensitive names",
			prose: "usa: 0.85\nAUSTRALIA: 0.66",
			want:  map[string]float64{"USA": 0.85, "AUS": 0.66},
		},
		{
			name:  "unrecognized countries dropped",
			prose: "USA: 0.85\nAtlantis: 0.99",
			want:  map[string]float64{"USA": 0.85},
		},
		{
			name:  "duplicate country last match wins",
			prose: "USA: 0.40\nCanada: 0.70\nUSA: 0.85",
			want:  map[string]float64{"USA": 0.85, "CAN": 0.70},
		},
		{
			name:  "no scores",
			prose: "no engagement data was available",
			want:  map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountryScores(tt.prose)
			if len(got) != len(tt.want) {
				t.Fatalf("CountryScores() = %v, want %v", got, tt.want)
			}
			for code, score := range tt.want {
				if got[code] != score {
					t.Errorf("score[%s] = %v, want %v", code, got[code], score)
				}
			}
		})
	}
}

// The full synonym table must round-trip through the colon pattern.
func TestCountryScoresFullTable(t *testing.T) {
	prose := "usa: 0.11\ncanada: 0.12\nuk: 0.13\ngermany: 0.14\nfrance: 0.15\n" +
		"japan: 0.16\naustralia: 0.17\nbrazil: 0.18\nindia: 0.19\nsouth africa: 0.21"

	want := map[string]float64{
		"USA": 0.11, "CAN": 0.12, "GBR": 0.13, "DEU": 0.14, "FRA": 0.15,
		"JPN": 0.16, "AUS": 0.17, "BRA": 0.18, "IND": 0.19, "ZAF": 0.21,
	}

	got := CountryScores(prose)
	if len(got) != len(want) {
		t.Fatalf("got %d scores, want %d: %v", len(got), len(want), got)
	}
	for code, score := range want {
		if got[code] != score {
			t.Errorf("score[%s] = %v, want %v", code, got[code], score)
		}
	}
}

// Once a pattern yields a recognized country, later patterns are not tried.
func TestCountryScoresFirstPatternWins(t *testing.T) {
	// Colon pattern finds USA; the dash line for Canada must be ignored.
	prose := "USA: 0.85\nCanada - 0.70"

	got := CountryScores(prose)
	if _, ok := got["CAN"]; ok {
		t.Errorf("dash pattern applied after colon pattern matched: %v", got)
	}
	if got["USA"] != 0.85 {
		t.Errorf("score[USA] = %v, want 0.85", got["USA"])
	}
}
