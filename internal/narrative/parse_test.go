package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCareerPaths_TwoBlocks(t *testing.T) {
	content := `Job Title: Software Engineer
Description: Designs and builds software systems.
Required Skills: Programming, problem-solving
Education: Bachelor's degree in Computer Science
Career Progression: Junior Developer -> Senior Developer
//
Job Title: Data Analyst
Description: Turns raw data into insight.
Required Skills: SQL, statistics
Education: Bachelor's in Statistics
Career Progression: Analyst -> Senior Analyst`

	paths := ParseCareerPaths(content)
	require.Len(t, paths, 2)

	assert.Equal(t, "Software Engineer", paths[0].Title)
	assert.Equal(t, "Designs and builds software systems.", paths[0].Description)
	assert.Equal(t, "Programming, problem-solving", paths[0].RequiredSkills)
	assert.Equal(t, "Bachelor's degree in Computer Science", paths[0].Education)
	assert.Equal(t, "Junior Developer -> Senior Developer", paths[0].Progression)
	assert.Empty(t, paths[0].GrowthPotential)

	assert.Equal(t, "Data Analyst", paths[1].Title)
}

func TestParseCareerPaths_GrowthPotentialVariant(t *testing.T) {
	content := `Job Title: Metaverse Experience Designer
Description: Creates immersive virtual environments.
Required Skills: VR/AR development
Education: Bachelor's in Digital Design
Growth Potential: Strong demand as VR expands.`

	paths := ParseCareerPaths(content)
	require.Len(t, paths, 1)
	assert.Equal(t, "Strong demand as VR expands.", paths[0].GrowthPotential)
	assert.Empty(t, paths[0].Progression)
}

func TestParseCareerPaths_SkipsEmptyAndUnlabeledBlocks(t *testing.T) {
	content := `
//
Here are some great careers for you!
//
Job Title: Nurse
Description: Cares for patients.
//
`

	paths := ParseCareerPaths(content)
	require.Len(t, paths, 1)
	assert.Equal(t, "Nurse", paths[0].Title)
}

func TestParseCareerPaths_TrimsWhitespaceAroundValues(t *testing.T) {
	content := "   Job Title:   Pilot  \n   Description:   Flies aircraft.  "

	paths := ParseCareerPaths(content)
	require.Len(t, paths, 1)
	assert.Equal(t, "Pilot", paths[0].Title)
	assert.Equal(t, "Flies aircraft.", paths[0].Description)
}

func TestParseCareerPaths_EmptyContent(t *testing.T) {
	assert.Empty(t, ParseCareerPaths(""))
	assert.Empty(t, ParseCareerPaths("// // //"))
}
