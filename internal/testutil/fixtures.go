package testutil

import (
	"time"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// SmallPool returns a six-question pool, one question per category in
// R, I, A, S, E, C order.
func SmallPool() []domain.Question {
	cats := []domain.Category{
		domain.CategoryRealistic, domain.CategoryInvestigative,
		domain.CategoryArtistic, domain.CategorySocial,
		domain.CategoryEnterprising, domain.CategoryConventional,
	}
	pool := make([]domain.Question, len(cats))
	for i, c := range cats {
		pool[i] = domain.Question{Text: "Do you enjoy activity " + string(c) + "?", Category: c}
	}
	return pool
}

// PoolOfSize returns a pool of n questions cycling through the six
// categories in R, I, A, S, E, C order.
func PoolOfSize(n int) []domain.Question {
	base := SmallPool()
	pool := make([]domain.Question, n)
	for i := range pool {
		pool[i] = base[i%len(base)]
	}
	return pool
}

// Float returns a pointer to v, for optional score fields.
func Float(v float64) *float64 { return &v }

// Profile returns a minimal valid profile for userName.
func Profile(userName string) *domain.Profile {
	return &domain.Profile{
		UserName:           userName,
		Timestamp:          time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Answers:            []string{userName, "5", "5", "6", "4", "5", "yes", "no"},
		DSEScores:          []float64{5, 5, 6, 4, 5},
		HollandCode:        "RIA",
		AllHollandCodes:    []string{"RIA", "IRA"},
		MatchingIndustries: []string{"Engineering"},
	}
}
