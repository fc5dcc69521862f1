package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ontrackhk/ontrack/internal/db"
	"github.com/ontrackhk/ontrack/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// A single-row upsert per user replaces the whole-table rewrite of the
// legacy JSON-file store, so concurrent writes for different users can
// no longer lose each other's updates. Same-user resubmission remains
// last-write-wins by design.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	answers, err := json.Marshal(emptyIfNil(p.Answers))
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	scores, err := json.Marshal(emptyFloatsIfNil(p.DSEScores))
	if err != nil {
		return fmt.Errorf("encoding dse scores: %w", err)
	}
	allCodes, err := json.Marshal(emptyIfNil(p.AllHollandCodes))
	if err != nil {
		return fmt.Errorf("encoding holland codes: %w", err)
	}
	industries, err := json.Marshal(emptyIfNil(p.MatchingIndustries))
	if err != nil {
		return fmt.Errorf("encoding industries: %w", err)
	}

	var categoryScores any
	if p.CategoryScores != nil {
		encoded, err := json.Marshal(p.CategoryScores)
		if err != nil {
			return fmt.Errorf("encoding category scores: %w", err)
		}
		categoryScores = string(encoded)
	}

	query := `INSERT OR REPLACE INTO profiles (user_name, submitted_at, answers,
		dse_scores, holland_code, all_holland_codes, matching_industries, category_scores)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.UserName,
		p.Timestamp.UTC().Format(time.RFC3339),
		string(answers),
		string(scores),
		p.HollandCode,
		string(allCodes),
		string(industries),
		categoryScores,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userName string) (*domain.Profile, error) {
	query := `SELECT user_name, submitted_at, answers, dse_scores, holland_code,
		all_holland_codes, matching_industries, category_scores
		FROM profiles WHERE user_name = ?`
	row := r.db.QueryRowContext(ctx, query, userName)

	var (
		p              domain.Profile
		submittedAt    string
		answers        string
		scores         string
		allCodes       string
		industries     string
		categoryScores sql.NullString
	)
	err := row.Scan(&p.UserName, &submittedAt, &answers, &scores,
		&p.HollandCode, &allCodes, &industries, &categoryScores)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %q: %w", userName, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing profile timestamp: %w", err)
	}
	p.Timestamp = ts

	if err := json.Unmarshal([]byte(answers), &p.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if err := json.Unmarshal([]byte(scores), &p.DSEScores); err != nil {
		return nil, fmt.Errorf("decoding dse scores: %w", err)
	}
	if err := json.Unmarshal([]byte(allCodes), &p.AllHollandCodes); err != nil {
		return nil, fmt.Errorf("decoding holland codes: %w", err)
	}
	if err := json.Unmarshal([]byte(industries), &p.MatchingIndustries); err != nil {
		return nil, fmt.Errorf("decoding industries: %w", err)
	}
	if categoryScores.Valid {
		if err := json.Unmarshal([]byte(categoryScores.String), &p.CategoryScores); err != nil {
			return nil, fmt.Errorf("decoding category scores: %w", err)
		}
	}
	return &p, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyFloatsIfNil(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
