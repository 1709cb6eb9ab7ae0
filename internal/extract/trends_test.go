package extract

import "testing"

func TestTrendList(t *testing.T) {
	tests := []struct {
		name  string
		prose string
		want  []string
	}{
		{
			name:  "numbered item kept short item dropped",
			prose: "1. Dance Challenges are trending\n2. Too short",
			want:  []string{"Dance Challenges are trending"},
		},
		{
			name:  "keyword qualifies unnumbered segment",
			prose: "Short form video is extremely popular right now\nNothing to see in this one here",
			want:  []string{"Short form video is extremely popular right now"},
		},
		{
			name:  "long segments dropped",
			prose: "1. " + "This trending topic description is far far too long to keep around for a tag display",
			want:  nil,
		},
		{
			name:  "truncated to fifty chars",
			prose: "1. Morning routine vlogs with productivity tips are trending everywhere",
			want:  []string{"Morning routine vlogs with productivity tips are t"},
		},
		{
			name: "capped at five",
			prose: "1. First viral fitness trend here\n2. Second viral fitness trend\n3. Third viral fitness trend\n" +
				"4. Fourth viral fitness trend\n5. Fifth viral fitness trend\n6. Sixth viral fitness trend",
			want: []string{
				"First viral fitness trend here",
				"Second viral fitness trend",
				"Third viral fitness trend",
				"Fourth viral fitness trend",
				"Fifth viral fitness trend",
			},
		},
		{
			name:  "empty prose",
			prose: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrendList(tt.prose)
			if len(got) != len(tt.want) {
				t.Fatalf("TrendList() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("trend[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRegionalTrends(t *testing.T) {
	prose := "In the USA, short-form dance challenges dominate fitness content feeds this year.\n\n" +
		"Europe favors longer educational wellness videos with subtitles across several markets and languages.\n\n" +
		"Europe also has a small scene.\n\n" +
		"too short india\n\n" +
		"No region mentioned in this paragraph at all, sadly for everyone involved."

	got := RegionalTrends(prose)

	if _, ok := got["USA"]; !ok {
		t.Fatal("USA paragraph not extracted")
	}
	if _, ok := got["India"]; ok {
		t.Error("short paragraph should not qualify for India")
	}
	if _, ok := got["Latin America"]; ok {
		t.Error("unmentioned region should be omitted")
	}

	// Longest qualifying Europe paragraph wins.
	want := "Europe favors longer educational wellness videos with subtitles across several markets and languages."
	if got["Europe"] != want {
		t.Errorf("Europe = %q, want %q", got["Europe"], want)
	}
}

func TestRegionalTrendsTruncation(t *testing.T) {
	long := "India content trends: "
	for len(long) < 300 {
		long += "regional cricket comedy skits and street food reels keep winning "
	}

	got := RegionalTrends(long)
	if len(got["India"]) != 150 {
		t.Errorf("India blurb length = %d, want 150", len(got["India"]))
	}
}
