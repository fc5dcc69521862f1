package match

import (
	"math"
	"sort"
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// IndustriesForCodes returns the industries whose mapping contains any
// of the given composite codes as an exact list member. This is the
// paged-survey convention; industries come back in mapping order,
// deduplicated.
func IndustriesForCodes(codes []string, mapping []domain.IndustryMapping) []string {
	codeSet := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		codeSet[c] = struct{}{}
	}

	var industries []string
	seen := make(map[string]struct{})
	for _, entry := range mapping {
		for _, mc := range entry.HollandCodes {
			if _, ok := codeSet[mc]; !ok {
				continue
			}
			if _, dup := seen[entry.Industry]; !dup {
				seen[entry.Industry] = struct{}{}
				industries = append(industries, entry.Industry)
			}
			break
		}
	}
	return industries
}

// IndustriesForPrimary returns the industries whose mapping holds any
// code contained in the primary 3-letter code. This is the one-shot
// convention: character-level containment, not code-level equality,
// and deliberately different from IndustriesForCodes.
//
// Fallback chain: no match on the full code widens the search to the
// single highest-ranked letter; still nothing yields the General
// sentinel industry.
func IndustriesForPrimary(primary string, mapping []domain.IndustryMapping) []string {
	industries := containedIn(primary, mapping)
	if len(industries) == 0 && len(primary) > 0 {
		industries = containedIn(primary[:1], mapping)
	}
	if len(industries) == 0 {
		industries = []string{domain.GeneralIndustry}
	}
	return industries
}

func containedIn(code string, mapping []domain.IndustryMapping) []string {
	var industries []string
	for _, entry := range mapping {
		for _, mc := range entry.HollandCodes {
			if mc != "" && strings.Contains(code, mc) {
				industries = append(industries, entry.Industry)
				break
			}
		}
	}
	return industries
}

// ClosestProgram scans programs for the one whose median score index is
// nearest to target. Programs without a usable score are skipped; the
// first program seen wins exact ties. Returns nil when no program has a
// usable score.
func ClosestProgram(target float64, programs []domain.Program) *domain.Program {
	var closest *domain.Program
	minDiff := math.Inf(1)
	for i := range programs {
		score := programs[i].MedianScoreIndex
		if score == nil {
			continue
		}
		diff := math.Abs(*score - target)
		if diff < minDiff {
			minDiff = diff
			closest = &programs[i]
		}
	}
	return closest
}

// Recommend builds one recommendation per matched industry present in
// the catalog, sorted ascending by score difference. Industries with no
// catalog entry or no scorable program are skipped.
func Recommend(averageDSE float64, industries []string, catalog map[string][]domain.Program) []domain.Recommendation {
	var recs []domain.Recommendation
	for _, industry := range industries {
		programs, ok := catalog[industry]
		if !ok || len(programs) == 0 {
			continue
		}
		closest := ClosestProgram(averageDSE, programs)
		if closest == nil {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Industry:        industry,
			Program:         *closest,
			ScoreDifference: Round2(math.Abs(*closest.MedianScoreIndex - averageDSE)),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].ScoreDifference < recs[j].ScoreDifference
	})
	return recs
}

// Round2 rounds to two decimal places for client-facing score values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
