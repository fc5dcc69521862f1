package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ontrackhk/ontrack/internal/domain"
	"github.com/ontrackhk/ontrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_UpsertAndGetRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.Profile("alice")
	p.CategoryScores = map[domain.Category]int{
		domain.CategoryRealistic:     3,
		domain.CategoryInvestigative: 3,
		domain.CategoryArtistic:      2,
	}
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.UserName, got.UserName)
	assert.True(t, p.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, p.Answers, got.Answers)
	assert.Equal(t, p.DSEScores, got.DSEScores)
	assert.Equal(t, p.HollandCode, got.HollandCode)
	assert.Equal(t, p.AllHollandCodes, got.AllHollandCodes)
	assert.Equal(t, p.MatchingIndustries, got.MatchingIndustries)
	assert.Equal(t, p.CategoryScores, got.CategoryScores)
}

func TestProfileRepo_GetUnknownUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_ResubmissionOverwritesWholesale(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	first := testutil.Profile("alice")
	require.NoError(t, repo.Upsert(ctx, first))

	second := testutil.Profile("alice")
	second.Timestamp = first.Timestamp.Add(time.Hour)
	second.HollandCode = "SEC"
	second.AllHollandCodes = []string{"SEC"}
	second.MatchingIndustries = []string{"Social Work"}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "SEC", got.HollandCode)
	assert.Equal(t, []string{"Social Work"}, got.MatchingIndustries)
	// No versioning: the first record is gone entirely.
	assert.True(t, second.Timestamp.Equal(got.Timestamp))
}

func TestProfileRepo_NilCategoryScoresStayNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.Profile("bob")
	p.CategoryScores = nil
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, got.CategoryScores)
}

func TestProfileRepo_DistinctUsersDoNotCollide(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.Profile("alice")))
	bob := testutil.Profile("bob")
	bob.HollandCode = "CEI"
	require.NoError(t, repo.Upsert(ctx, bob))

	gotAlice, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	gotBob, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "RIA", gotAlice.HollandCode)
	assert.Equal(t, "CEI", gotBob.HollandCode)
}
