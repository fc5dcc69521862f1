package dataset

import (
	"path/filepath"
	"testing"

	"github.com/ontrackhk/ontrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidTables(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	assert.Equal(t, 42, store.PoolSize())
	assert.Equal(t, "Sample interest question 1?", store.Questions()[0].Text)
	assert.Equal(t, domain.CategoryRealistic, store.Questions()[0].Category)

	mapping := store.Mapping()
	require.Len(t, mapping, 3)
	assert.Equal(t, "Engineering", mapping[0].Industry)
	assert.Equal(t, []string{"R", "RIA", "RIE"}, mapping[0].HollandCodes)
}

func TestLoad_CatalogParsesScoreSentinels(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	catalog := store.Catalog()
	engineering := catalog["Engineering"]
	require.Len(t, engineering, 2)

	require.NotNil(t, engineering[0].MedianScoreIndex)
	assert.Equal(t, 5.2, *engineering[0].MedianScoreIndex)

	// The "/" sentinel means no usable score.
	assert.Nil(t, engineering[1].MedianScoreIndex)

	// Numeric strings parse like numbers.
	design := catalog["Design"]
	require.Len(t, design, 1)
	require.NotNil(t, design[0].MedianScoreIndex)
	assert.Equal(t, 4.8, *design[0].MedianScoreIndex)

	assert.Empty(t, catalog["Finance"])
}

func TestLoad_RejectsInvalidCategory(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "badcategory"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope"))
	require.Error(t, err)
}

func TestNew_AllowsSmallPoolsForTests(t *testing.T) {
	store, err := New(
		[]domain.Question{{Text: "q", Category: domain.CategoryRealistic}},
		nil, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, store.PoolSize())
}

func TestNew_RejectsEmptyQuestionText(t *testing.T) {
	_, err := New([]domain.Question{{Text: "  ", Category: domain.CategoryRealistic}}, nil, nil)
	require.Error(t, err)
}

func TestNew_RejectsEmptyIndustryName(t *testing.T) {
	_, err := New(nil, []domain.IndustryMapping{{Industry: " "}}, nil)
	require.Error(t, err)
}

func TestQuestions_ReturnsACopy(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	qs := store.Questions()
	qs[0].Text = "mutated"
	assert.Equal(t, "Sample interest question 1?", store.Questions()[0].Text)
}
