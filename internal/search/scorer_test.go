package search

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "lowercases and trims", raw: "  RaPor  ", want: "rapor"},
		{name: "two runes is enough", raw: "ab", want: "ab"},
		{name: "single rune rejected", raw: "a", wantErr: true},
		{name: "whitespace only rejected", raw: "   ", wantErr: true},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "multibyte runes counted as runes", raw: "çş", want: "çş"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuery(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeQuery(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeQuery(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScorerMatches(t *testing.T) {
	scorer := NewScorerAt(fixedNow)

	tests := []struct {
		name  string
		doc   Document
		query string
		want  bool
	}{
		{
			name:  "substring of a title word matches",
			doc:   Document{Title: "hastane raporu"},
			query: "has",
			want:  true,
		},
		{
			name:  "body match",
			doc:   Document{Title: "bakim", Body: "yazici toneri degisti"},
			query: "toner",
			want:  true,
		},
		{
			name:  "tag match",
			doc:   Document{Title: "bakim", Tags: []string{"eczane"}},
			query: "ecza",
			want:  true,
		},
		{
			name:  "no field contains the query",
			doc:   Document{Title: "bakim", Body: "rutin kontrol", Tags: []string{"servis"}},
			query: "rapor",
			want:  false,
		},
		{
			name:  "recent document without a textual hit is not a match",
			doc:   Document{Title: "bakim", Timestamp: fixedNow()},
			query: "rapor",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Matches(tt.doc, tt.query); got != tt.want {
				t.Errorf("Matches(%+v, %q) = %v, want %v", tt.doc, tt.query, got, tt.want)
			}
		})
	}
}

func TestScorerScore(t *testing.T) {
	scorer := NewScorerAt(fixedNow)
	old := fixedNow().AddDate(0, -2, 0)
	fresh := fixedNow().Add(-24 * time.Hour)

	tests := []struct {
		name  string
		doc   Document
		query string
		want  int
	}{
		{
			name:  "title contains only",
			doc:   Document{Title: "aylik rapor", Timestamp: old},
			query: "rapor",
			want:  100,
		},
		{
			name:  "title prefix stacks on contains",
			doc:   Document{Title: "rapor arsivi", Timestamp: old},
			query: "rapor",
			want:  150,
		},
		{
			name:  "body only",
			doc:   Document{Title: "bakim", Body: "rapor ekte", Timestamp: old},
			query: "rapor",
			want:  50,
		},
		{
			name:  "tag only",
			doc:   Document{Title: "bakim", Tags: []string{"dilekceler"}, Timestamp: old},
			query: "dilek",
			want:  25,
		},
		{
			name:  "recency adds ten",
			doc:   Document{Title: "aylik rapor", Timestamp: fresh},
			query: "rapor",
			want:  110,
		},
		{
			name:  "every rule fires",
			doc:   Document{Title: "rapor arsivi", Body: "yillik rapor listesi", Tags: []string{"raporlar"}, Timestamp: fresh},
			query: "rapor",
			want:  185,
		},
		{
			name:  "seven day boundary is exclusive",
			doc:   Document{Title: "aylik rapor", Timestamp: fixedNow().AddDate(0, 0, -7)},
			query: "rapor",
			want:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Score(tt.doc, tt.query); got != tt.want {
				t.Errorf("Score(%+v, %q) = %d, want %d", tt.doc, tt.query, got, tt.want)
			}
		})
	}
}

func TestPrefixNeverScoresBelowPlainContains(t *testing.T) {
	scorer := NewScorerAt(fixedNow)
	old := fixedNow().AddDate(0, -2, 0)

	prefix := Document{Title: "rapor arsivi", Timestamp: old}
	contains := Document{Title: "aylik rapor", Timestamp: old}

	if scorer.Score(prefix, "rapor") <= scorer.Score(contains, "rapor") {
		t.Errorf("prefix match scored %d, plain contains scored %d; prefix must rank higher",
			scorer.Score(prefix, "rapor"), scorer.Score(contains, "rapor"))
	}
}
