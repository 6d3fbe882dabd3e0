package search

import (
	"strings"
	"time"
	"unicode/utf8"

	"dept-tracker-be/internal/pkg/apperrors"
)

// MinQueryLength is the trimmed length below which a query is rejected.
const MinQueryLength = 2

// NormalizeQuery trims and lower-cases the raw query. Queries shorter than
// MinQueryLength after trimming fail with a ValidationError.
func NormalizeQuery(raw string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(q) < MinQueryLength {
		return "", apperrors.NewValidation("search query must be at least %d characters", MinQueryLength)
	}
	return q, nil
}

// Rule is one scoring bonus: a predicate over the normalized document and
// the weight it contributes when the predicate holds.
type Rule struct {
	Name   string
	Weight int
	Match  func(doc Document, query string, now time.Time) bool
}

func titleContains(doc Document, query string, _ time.Time) bool {
	return strings.Contains(strings.ToLower(doc.Title), query)
}

func titlePrefix(doc Document, query string, _ time.Time) bool {
	return strings.HasPrefix(strings.ToLower(doc.Title), query)
}

func bodyContains(doc Document, query string, _ time.Time) bool {
	return strings.Contains(strings.ToLower(doc.Body), query)
}

func tagContains(doc Document, query string, _ time.Time) bool {
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func recentlyTouched(doc Document, _ string, now time.Time) bool {
	return now.Sub(doc.Timestamp).Seconds()/86400 < 7
}

// defaultRules is the additive scoring table. A title-prefix match stacks on
// top of title-contains, so a prefix match on title is worth 150 and the
// maximum score is 185.
var defaultRules = []Rule{
	{Name: "title-contains", Weight: 100, Match: titleContains},
	{Name: "title-prefix", Weight: 50, Match: titlePrefix},
	{Name: "body-contains", Weight: 50, Match: bodyContains},
	{Name: "tag-contains", Weight: 25, Match: tagContains},
	{Name: "recently-touched", Weight: 10, Match: recentlyTouched},
}

type Scorer struct {
	rules []Rule
	now   func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{
		rules: defaultRules,
		now:   time.Now,
	}
}

// NewScorerAt pins "now" for deterministic recency scoring in tests.
func NewScorerAt(now func() time.Time) *Scorer {
	return &Scorer{
		rules: defaultRules,
		now:   now,
	}
}

// Matches reports whether the document survives filtering: the query must
// appear in title, body, or a tag. Recency alone never makes a match.
func (s *Scorer) Matches(doc Document, query string) bool {
	now := s.now()
	return titleContains(doc, query, now) ||
		bodyContains(doc, query, now) ||
		tagContains(doc, query, now)
}

// Score sums the weight of every rule whose predicate holds. It is only
// meaningful for documents that already passed Matches.
func (s *Scorer) Score(doc Document, query string) int {
	now := s.now()
	total := 0
	for _, rule := range s.rules {
		if rule.Match(doc, query, now) {
			total += rule.Weight
		}
	}
	return total
}
