package domain

import "time"

// Profile is the durable survey result for one user, keyed uniquely by
// user name. Resubmission overwrites the whole record (last write wins,
// no versioning).
type Profile struct {
	UserName           string             `json:"user_name"`
	Timestamp          time.Time          `json:"timestamp"`
	Answers            []string           `json:"answers"`
	DSEScores          []float64          `json:"dse_scores"`
	HollandCode        string             `json:"holland_codes"`
	AllHollandCodes    []string           `json:"all_holland_codes"`
	MatchingIndustries []string           `json:"matching_industries"`
	CategoryScores     map[Category]int   `json:"category_scores,omitempty"`
}

// HasCode reports whether the primary code is one of the alternatives.
func (p *Profile) HasCode(code string) bool {
	for _, c := range p.AllHollandCodes {
		if c == code {
			return true
		}
	}
	return false
}

// CareerPath is one structured block parsed from generated narrative
// text. Progression is set for career-path narratives, GrowthPotential
// for emerging-career narratives.
type CareerPath struct {
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	RequiredSkills  string `json:"required_skills,omitempty"`
	Education       string `json:"education,omitempty"`
	Progression     string `json:"progression,omitempty"`
	GrowthPotential string `json:"growth_potential,omitempty"`
}

// Empty reports whether no label was parsed into the path.
func (c CareerPath) Empty() bool {
	return c == CareerPath{}
}
