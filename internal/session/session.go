// Package session tracks per-user survey state in memory: which pool
// questions a user has already been shown and the answers collected so
// far. State is volatile and lost on restart.
package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// ErrPoolExhausted indicates fewer unused questions remain than a page
// needs.
var ErrPoolExhausted = errors.New("not enough unique questions remaining")

// ErrNoSession indicates no record exists for the user.
var ErrNoSession = errors.New("no session for user")

// Record is one user's in-flight survey state. Records are never
// explicitly destroyed; they live for the process lifetime.
type Record struct {
	BasicInfo     []string
	Answers       []string
	FinalAnswers  []string
	UsedQuestions map[int]struct{}

	// Scoring artifacts cached when page 6 is derived.
	HollandCode        string
	AllHollandCodes    []string
	MatchingIndustries []string
	CategoryScores     map[domain.Category]int
}

// Tracker is the in-memory session store. The map is guarded by a
// mutex; updates to one user's record run under it, so concurrent
// submissions for the same user serialize to last-write-wins rather
// than interleaving.
type Tracker struct {
	mu      sync.Mutex
	records map[string]*Record
	rng     *rand.Rand
}

// NewTracker creates an empty tracker with a time-seeded sampler.
func NewTracker() *Tracker {
	seed := uint64(time.Now().UnixNano())
	return &Tracker{
		records: make(map[string]*Record),
		rng:     rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

func (t *Tracker) getOrCreateLocked(user string) *Record {
	rec, ok := t.records[user]
	if !ok {
		rec = &Record{UsedQuestions: make(map[int]struct{})}
		t.records[user] = rec
	}
	if rec.UsedQuestions == nil {
		rec.UsedQuestions = make(map[int]struct{})
	}
	return rec
}

// Draw samples n distinct unused question indices uniformly at random
// from a pool of poolSize questions, marks them used for the user, and
// returns them. The record is created lazily on first draw.
func (t *Tracker) Draw(user string, n, poolSize int) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.getOrCreateLocked(user)

	available := make([]int, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		if _, used := rec.UsedQuestions[i]; !used {
			available = append(available, i)
		}
	}
	if len(available) < n {
		return nil, ErrPoolExhausted
	}

	t.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	drawn := available[:n]
	for _, idx := range drawn {
		rec.UsedQuestions[idx] = struct{}{}
	}
	return append([]int(nil), drawn...), nil
}

// RecordBasicInfo stores the page-1 answers (name plus DSE scores).
func (t *Tracker) RecordBasicInfo(user string, answers []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreateLocked(user)
	rec.BasicInfo = append([]string(nil), answers...)
}

// RecordAnswerWindow writes a page's answers into the 10-slot window
// for that page, extending the sequence as needed. Pages are 2-5, so
// the window starts at (page-2)*10.
func (t *Tracker) RecordAnswerWindow(user string, page int, answers []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreateLocked(user)

	start := (page - 2) * 10
	end := start + len(answers)
	if end > len(rec.Answers) {
		grown := make([]string, end)
		copy(grown, rec.Answers)
		rec.Answers = grown
	}
	copy(rec.Answers[start:end], answers)
}

// RecordFinalAnswers stores the page-6 follow-up answers.
func (t *Tracker) RecordFinalAnswers(user string, answers []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreateLocked(user)
	rec.FinalAnswers = append([]string(nil), answers...)
}

// CacheScoring stores the page-6 scoring artifacts on the record.
func (t *Tracker) CacheScoring(user, primary string, all []string, industries []string, counts map[domain.Category]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreateLocked(user)
	rec.HollandCode = primary
	rec.AllHollandCodes = append([]string(nil), all...)
	rec.MatchingIndustries = append([]string(nil), industries...)
	rec.CategoryScores = counts
}

// Snapshot returns a copy of the user's record, or ErrNoSession.
func (t *Tracker) Snapshot(user string) (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[user]
	if !ok {
		return nil, ErrNoSession
	}
	cp := &Record{
		BasicInfo:          append([]string(nil), rec.BasicInfo...),
		Answers:            append([]string(nil), rec.Answers...),
		FinalAnswers:       append([]string(nil), rec.FinalAnswers...),
		HollandCode:        rec.HollandCode,
		AllHollandCodes:    append([]string(nil), rec.AllHollandCodes...),
		MatchingIndustries: append([]string(nil), rec.MatchingIndustries...),
		UsedQuestions:      make(map[int]struct{}, len(rec.UsedQuestions)),
	}
	for idx := range rec.UsedQuestions {
		cp.UsedQuestions[idx] = struct{}{}
	}
	if rec.CategoryScores != nil {
		cp.CategoryScores = make(map[domain.Category]int, len(rec.CategoryScores))
		for k, v := range rec.CategoryScores {
			cp.CategoryScores[k] = v
		}
	}
	return cp, nil
}

// Exists reports whether a record exists for the user.
func (t *Tracker) Exists(user string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.records[user]
	return ok
}
