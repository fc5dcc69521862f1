package scoring

import (
	"sort"
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// Counts holds the yes-answer tally per category. All six categories
// are always present, even at zero.
type Counts map[domain.Category]int

// NewCounts returns a tally with every category initialized to zero.
func NewCounts() Counts {
	c := make(Counts, len(domain.Categories))
	for _, cat := range domain.Categories {
		c[cat] = 0
	}
	return c
}

// Tally counts case-insensitive "yes" answers against the question pool.
// Answer i is attributed to pool[i mod len(pool)]: the attribution is
// positional over the pool, not over the questions a user was shown.
// Changing this would alter every historical code output.
func Tally(answers []string, pool []domain.Question) Counts {
	counts := NewCounts()
	if len(pool) == 0 {
		return counts
	}
	for i, answer := range answers {
		if !IsYes(answer) {
			continue
		}
		counts[pool[i%len(pool)].Category]++
	}
	return counts
}

// TallyPrefix is the one-shot submission variant: answer i is counted
// only while i is still inside the pool, with no modulo wrap.
func TallyPrefix(answers []string, pool []domain.Question) Counts {
	counts := NewCounts()
	for i, answer := range answers {
		if i >= len(pool) {
			break
		}
		if !IsYes(answer) {
			continue
		}
		counts[pool[i].Category]++
	}
	return counts
}

// IsYes reports whether an answer string counts as an affirmative.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// rankDesc orders categories by count descending, letter descending on
// ties. This is the comparator the grouped composite-code path uses.
func rankDesc(counts Counts) []domain.Category {
	cats := append([]domain.Category(nil), domain.Categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] > cats[j]
	})
	return cats
}

// rankAsc orders categories by count descending, letter ascending on
// ties. This is the comparator the direct top-3 path uses. The two
// paths intentionally disagree on tie order; see DirectCode.
func rankAsc(counts Counts) []domain.Category {
	cats := append([]domain.Category(nil), domain.Categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}

// Groups are the categories sharing the top three distinct count
// values, in ranked order. A group holds more than one letter when
// counts tie; Second or Third may be empty when fewer than three
// distinct values exist.
type Groups struct {
	Max    []domain.Category
	Second []domain.Category
	Third  []domain.Category
}

// GroupTopThree partitions the ranked categories into the groups
// sharing the top three distinct count values.
func GroupTopThree(counts Counts) Groups {
	ranked := rankDesc(counts)

	var g Groups
	distinct := make([]int, 0, 3)
	for _, cat := range ranked {
		v := counts[cat]
		if len(distinct) == 0 || distinct[len(distinct)-1] != v {
			if len(distinct) == 3 {
				break
			}
			distinct = append(distinct, v)
		}
		switch len(distinct) {
		case 1:
			g.Max = append(g.Max, cat)
		case 2:
			g.Second = append(g.Second, cat)
		case 3:
			g.Third = append(g.Third, cat)
		}
	}
	return g
}

// CompositeCodes expands the groups into one or more 3-letter codes.
// The first code is the primary one.
//
// The expansion rules:
//   - two tied leaders: every 2-permutation of them, suffixed with the
//     top second-group letter
//   - three or more tied leaders: every 3-permutation of the leaders
//   - single leader over a tied second group: leader prefixed to every
//     2-permutation of the second group
//   - single leader, single runner-up, tied third group: one code per
//     third-group letter (no permutation expansion)
//   - all three groups single: their plain concatenation
func CompositeCodes(g Groups) []string {
	switch {
	case len(g.Max) == 2:
		var codes []string
		for _, p := range permutations(g.Max, 2) {
			codes = append(codes, join(p)+string(g.Second[0]))
		}
		return codes
	case len(g.Max) >= 3:
		var codes []string
		for _, p := range permutations(g.Max, 3) {
			codes = append(codes, join(p))
		}
		return codes
	case len(g.Second) >= 2:
		var codes []string
		for _, p := range permutations(g.Second, 2) {
			codes = append(codes, string(g.Max[0])+join(p))
		}
		return codes
	case len(g.Third) >= 2:
		var codes []string
		for _, p := range permutations(g.Third, 1) {
			codes = append(codes, string(g.Max[0])+string(g.Second[0])+join(p))
		}
		return codes
	default:
		return []string{string(g.Max[0]) + string(g.Second[0]) + string(g.Third[0])}
	}
}

// CodesFor is the full grouped path: tallied counts to composite codes.
func CodesFor(counts Counts) []string {
	return CompositeCodes(GroupTopThree(counts))
}

// JoinCodes renders alternative codes the way clients expect them.
func JoinCodes(codes []string) string {
	return strings.Join(codes, " / ")
}

// DirectCode concatenates the top three categories by count descending,
// letter ascending. This is a second, independent code convention used
// by the one-shot submission path; it is kept separate from
// CompositeCodes on purpose.
func DirectCode(counts Counts) string {
	ranked := rankAsc(counts)
	var b strings.Builder
	for _, cat := range ranked[:3] {
		b.WriteString(string(cat))
	}
	return b.String()
}

func join(cats []domain.Category) string {
	var b strings.Builder
	for _, c := range cats {
		b.WriteString(string(c))
	}
	return b.String()
}

// permutations returns all k-permutations of cats, preserving the
// relative order of the input as the first permutation.
func permutations(cats []domain.Category, k int) [][]domain.Category {
	var result [][]domain.Category
	var current []domain.Category
	used := make([]bool, len(cats))

	var walk func()
	walk = func() {
		if len(current) == k {
			perm := append([]domain.Category(nil), current...)
			result = append(result, perm)
			return
		}
		for i, cat := range cats {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, cat)
			walk()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	walk()
	return result
}
