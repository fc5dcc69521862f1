package narrative

import (
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// ParseCareerPaths splits generated text into structured career paths.
// Blocks are separated by "//"; within a block, lines carrying a known
// label populate the matching field. Blocks with no recognized labels
// are dropped.
func ParseCareerPaths(content string) []domain.CareerPath {
	blocks := strings.Split(content, "//")
	paths := make([]domain.CareerPath, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var p domain.CareerPath
		found := false
		for _, line := range strings.Split(block, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			switch {
			case strings.Contains(line, "Job Title:"):
				p.Title = stripLabel(line, "Job Title:")
				found = true
			case strings.Contains(line, "Description:"):
				p.Description = stripLabel(line, "Description:")
				found = true
			case strings.Contains(line, "Required Skills:"):
				p.RequiredSkills = stripLabel(line, "Required Skills:")
				found = true
			case strings.Contains(line, "Education:"):
				p.Education = stripLabel(line, "Education:")
				found = true
			case strings.Contains(line, "Career Progression:"):
				p.Progression = stripLabel(line, "Career Progression:")
				found = true
			case strings.Contains(line, "Growth Potential:"):
				p.GrowthPotential = stripLabel(line, "Growth Potential:")
				found = true
			}
		}
		if found {
			paths = append(paths, p)
		}
	}
	return paths
}

func stripLabel(line, label string) string {
	return strings.TrimSpace(strings.Replace(line, label, "", 1))
}
