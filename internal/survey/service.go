// Package survey orchestrates the questionnaire flow: serving pages,
// collecting answers, scoring them into Holland codes, persisting the
// resulting profile, and deriving programme recommendations.
package survey

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ontrackhk/ontrack/internal/dataset"
	"github.com/ontrackhk/ontrack/internal/domain"
	"github.com/ontrackhk/ontrack/internal/match"
	"github.com/ontrackhk/ontrack/internal/narrative"
	"github.com/ontrackhk/ontrack/internal/repository"
	"github.com/ontrackhk/ontrack/internal/scoring"
	"github.com/ontrackhk/ontrack/internal/session"
)

const (
	pageSize       = 10
	basicInfoCount = 6
	dseScoreCount  = 5
)

// SessionStore tracks per-user in-flight survey state. *session.Tracker
// is the in-memory implementation.
type SessionStore interface {
	Draw(user string, n, poolSize int) ([]int, error)
	RecordBasicInfo(user string, answers []string)
	RecordAnswerWindow(user string, page int, answers []string)
	RecordFinalAnswers(user string, answers []string)
	CacheScoring(user, primary string, all, industries []string, counts map[domain.Category]int)
	Snapshot(user string) (*session.Record, error)
}

// Service wires the dataset store, session tracker, profile repository
// and narrative generator behind the survey's use cases.
type Service struct {
	store     *dataset.Store
	tracker   SessionStore
	profiles  repository.ProfileRepo
	narrative *narrative.Service
	obs       UseCaseObserver
}

func NewService(store *dataset.Store, tracker SessionStore, profiles repository.ProfileRepo, nar *narrative.Service, obs UseCaseObserver) *Service {
	if obs == nil {
		obs = NoopUseCaseObserver{}
	}
	return &Service{
		store:     store,
		tracker:   tracker,
		profiles:  profiles,
		narrative: nar,
		obs:       obs,
	}
}

// Page is one survey page as served to the client. HollandCodes is only
// populated on page 6, where the follow-up questions are derived from
// the scored session.
type Page struct {
	Questions    []domain.PageQuestion `json:"questions"`
	HollandCodes string                `json:"holland_codes,omitempty"`
}

// basicInfoQuestions is the fixed page-1 question set: name plus five
// DSE predicted scores.
var basicInfoQuestions = []domain.PageQuestion{
	{Type: "text", Question: "Please enter your name."},
	{Type: "score", Question: "DSE Chinese predicted score (1-7)"},
	{Type: "score", Question: "DSE English predicted score (1-7)"},
	{Type: "score", Question: "DSE Mathematics predicted score (1-7)"},
	{Type: "score", Question: "DSE Elective 1 predicted score (1-7)"},
	{Type: "score", Question: "DSE Elective 2 predicted score (1-7)"},
}

// GetPage serves one page of the survey. Page 1 is fixed; pages 2-5
// sample 10 unseen questions for the user; page 6 scores the collected
// answers and turns the matched industries into yes/no follow-ups.
func (s *Service) GetPage(ctx context.Context, pageNumber int, userName string) (page *Page, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_survey_page", map[string]any{"page": pageNumber, "user": userName}, started, err)
	}()

	switch {
	case pageNumber == 1:
		return &Page{Questions: append([]domain.PageQuestion(nil), basicInfoQuestions...)}, nil

	case pageNumber >= 2 && pageNumber <= 5:
		if userName == "" {
			return nil, validationf("User name is required for pages 2-5")
		}
		indices, err := s.tracker.Draw(userName, pageSize, s.store.PoolSize())
		if err != nil {
			return nil, err
		}
		pool := s.store.Questions()
		questions := make([]domain.PageQuestion, len(indices))
		for i, idx := range indices {
			questions[i] = domain.PageQuestion{
				Question: pool[idx].Text,
				Category: pool[idx].Category,
			}
		}
		return &Page{Questions: questions}, nil

	case pageNumber == 6:
		if userName == "" {
			return nil, validationf("User name is required for page 6")
		}
		return s.deriveFinalPage(userName)

	default:
		return nil, validationf("Invalid page number")
	}
}

// deriveFinalPage scores the session's collected answers, caches the
// resulting codes and industries on the session, and builds the page-6
// follow-up questions.
func (s *Service) deriveFinalPage(userName string) (*Page, error) {
	rec, err := s.tracker.Snapshot(userName)
	if err != nil {
		return nil, validationf("No previous responses found for this user")
	}
	if len(rec.Answers) == 0 {
		return nil, validationf("No answers found for this user")
	}

	counts := scoring.Tally(rec.Answers, s.store.Questions())
	codes := scoring.CodesFor(counts)
	joined := scoring.JoinCodes(codes)
	industries := match.IndustriesForCodes(codes, s.store.Mapping())

	s.tracker.CacheScoring(userName, codes[0], codes, industries, counts)

	questions := make([]domain.PageQuestion, len(industries))
	for i, industry := range industries {
		questions[i] = domain.PageQuestion{
			Question: fmt.Sprintf("Would you consider a career in %s?", industry),
		}
	}
	return &Page{Questions: questions, HollandCodes: joined}, nil
}

// SubmitPageRequest is the body of a per-page submission.
type SubmitPageRequest struct {
	UserName   string   `json:"user_name"`
	PageNumber int      `json:"page_number"`
	Answers    []string `json:"answers"`
}

// SubmitPage stores one page's answers on the user's session. Page 1
// must carry exactly 6 answers; pages 2-5 exactly 10; page 6 stores the
// follow-up answers verbatim.
func (s *Service) SubmitPage(ctx context.Context, req SubmitPageRequest) (err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "submit_survey_page", map[string]any{"page": req.PageNumber, "user": req.UserName}, started, err)
	}()

	if req.UserName == "" {
		return validationf("Username is required")
	}

	switch {
	case req.PageNumber == 1:
		if len(req.Answers) != basicInfoCount {
			return validationf("Invalid number of answers for page 1")
		}
		s.tracker.RecordBasicInfo(req.UserName, req.Answers)
	case req.PageNumber >= 2 && req.PageNumber <= 5:
		if len(req.Answers) != pageSize {
			return validationf("Expected %d answers for page %d, got %d", pageSize, req.PageNumber, len(req.Answers))
		}
		s.tracker.RecordAnswerWindow(req.UserName, req.PageNumber, req.Answers)
	case req.PageNumber == 6:
		s.tracker.RecordFinalAnswers(req.UserName, req.Answers)
	default:
		return validationf("Invalid page number")
	}
	return nil
}

// SubmitSurveyRequest is the one-shot submission body: the full answer
// sequence (name, DSE scores, then yes/no answers) plus the DSE scores
// extracted on their own.
type SubmitSurveyRequest struct {
	UserName  string    `json:"user_name"`
	Answers   []string  `json:"answers"`
	DSEScores []float64 `json:"dse_scores"`
}

// SubmitSurveyResult reports the scoring outcome of a one-shot submission.
type SubmitSurveyResult struct {
	UserName           string   `json:"user_name"`
	HollandCode        string   `json:"holland_codes"`
	MatchingIndustries []string `json:"matching_industries"`
}

// SubmitSurvey scores a complete submission in one call and persists
// the profile. This path uses the direct top-3 code convention and
// containment-based industry matching, which intentionally differ from
// the paged flow's conventions.
func (s *Service) SubmitSurvey(ctx context.Context, req SubmitSurveyRequest) (result *SubmitSurveyResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "submit_survey", map[string]any{"user": req.UserName}, started, err)
	}()

	if req.UserName == "" {
		return nil, validationf("Username is required")
	}

	var yesNo []string
	if len(req.Answers) > basicInfoCount {
		yesNo = req.Answers[basicInfoCount:]
	}

	counts := scoring.TallyPrefix(yesNo, s.store.Questions())
	code := scoring.DirectCode(counts)
	industries := match.IndustriesForPrimary(code, s.store.Mapping())

	profile := &domain.Profile{
		UserName:           req.UserName,
		Timestamp:          time.Now().UTC(),
		Answers:            req.Answers,
		DSEScores:          req.DSEScores,
		HollandCode:        code,
		AllHollandCodes:    []string{code},
		MatchingIndustries: industries,
		CategoryScores:     counts,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("persisting survey profile: %w", err)
	}

	return &SubmitSurveyResult{
		UserName:           req.UserName,
		HollandCode:        code,
		MatchingIndustries: industries,
	}, nil
}

// Results returns a user's survey outcome, preferring the live session
// over the durable store.
func (s *Service) Results(ctx context.Context, userName string) (p *domain.Profile, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_survey_results", map[string]any{"user": userName}, started, err)
	}()

	if rec, err := s.tracker.Snapshot(userName); err == nil {
		return profileFromSession(userName, rec), nil
	}
	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// profileFromSession assembles a profile view from in-memory state.
// DSE scores come from the page-1 basic info when parseable.
func profileFromSession(userName string, rec *session.Record) *domain.Profile {
	p := &domain.Profile{
		UserName:           userName,
		Answers:            rec.Answers,
		HollandCode:        rec.HollandCode,
		AllHollandCodes:    rec.AllHollandCodes,
		MatchingIndustries: rec.MatchingIndustries,
		CategoryScores:     rec.CategoryScores,
	}
	if len(rec.BasicInfo) == basicInfoCount {
		scores := make([]float64, 0, dseScoreCount)
		for _, raw := range rec.BasicInfo[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return p
			}
			scores = append(scores, v)
		}
		p.DSEScores = scores
	}
	return p
}

// StoredProfile loads the durable profile record for a user.
func (s *Service) StoredProfile(ctx context.Context, userName string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, userName)
}

// RecommendationsResult is the JUPAS programme recommendation response.
type RecommendationsResult struct {
	UserName           string                  `json:"user_name"`
	AverageDSEScore    float64                 `json:"average_dse_score"`
	MatchingIndustries []string                `json:"matching_industries"`
	Recommendations    []domain.Recommendation `json:"recommendations"`
	Message            string                  `json:"message,omitempty"`
}

// Recommendations computes per-industry programme recommendations from
// the persisted profile's average DSE score.
func (s *Service) Recommendations(ctx context.Context, userName string) (result *RecommendationsResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_jupas_recommendations", map[string]any{"user": userName}, started, err)
	}()

	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}

	scores, err := validateDSEScores(profile.DSEScores)
	if err != nil {
		return nil, err
	}
	average := avg(scores)

	if len(profile.MatchingIndustries) == 0 {
		return nil, validationf("No matching industries found in user data")
	}

	recs := match.Recommend(average, profile.MatchingIndustries, s.store.Catalog())

	result = &RecommendationsResult{
		UserName:           userName,
		AverageDSEScore:    match.Round2(average),
		MatchingIndustries: profile.MatchingIndustries,
		Recommendations:    recs,
	}
	if len(recs) == 0 {
		result.Recommendations = []domain.Recommendation{}
		result.Message = "No matching JUPAS programs found for your profile"
	}
	return result, nil
}

func validateDSEScores(scores []float64) ([]float64, error) {
	if len(scores) == 0 {
		return nil, validationf("DSE scores not found in user data")
	}
	for i, v := range scores {
		if v < 1 || v > 7 {
			return nil, validationf("DSE score must be between 1 and 7, got %g for subject %d", v, i+1)
		}
	}
	if len(scores) != dseScoreCount {
		return nil, validationf("Expected %d DSE scores, got %d", dseScoreCount, len(scores))
	}
	return scores, nil
}

func avg(scores []float64) float64 {
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}
