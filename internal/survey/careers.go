package survey

import (
	"context"
	"time"

	"github.com/ontrackhk/ontrack/internal/domain"
	"github.com/ontrackhk/ontrack/internal/match"
	"github.com/ontrackhk/ontrack/internal/narrative"
)

// CareerPathsResult is the career-path generation response.
type CareerPathsResult struct {
	UserName           string              `json:"user_name"`
	HollandCode        string              `json:"holland_codes"`
	MatchingIndustries []string            `json:"matching_industries"`
	CareerPaths        []domain.CareerPath `json:"career_paths"`
	TotalPaths         int                 `json:"total_paths"`
}

// CareerPaths generates concrete career suggestions from the persisted
// profile.
func (s *Service) CareerPaths(ctx context.Context, userName string) (result *CareerPathsResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_career_paths", map[string]any{"user": userName}, started, err)
	}()

	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	if profile.HollandCode == "" {
		return nil, validationf("Holland codes not found in user data")
	}
	if len(profile.MatchingIndustries) == 0 {
		return nil, validationf("No matching industries found")
	}

	generated, err := s.narrative.CareerPaths(ctx, profile.HollandCode, profile.MatchingIndustries)
	if err != nil {
		return nil, err
	}
	return &CareerPathsResult{
		UserName:           userName,
		HollandCode:        profile.HollandCode,
		MatchingIndustries: profile.MatchingIndustries,
		CareerPaths:        generated.Paths,
		TotalPaths:         generated.Total,
	}, nil
}

// EmergingCareersResult is the emerging-careers generation response.
type EmergingCareersResult struct {
	UserName           string              `json:"user_name"`
	HollandCode        string              `json:"holland_code"`
	DSEAverage         float64             `json:"dse_average"`
	MatchingIndustries []string            `json:"matching_industries"`
	PersonalInterests  PersonalInterests   `json:"personal_interests"`
	EmergingCareers    []domain.CareerPath `json:"emerging_careers"`
	TotalPaths         int                 `json:"total_paths"`
}

// PersonalInterests echoes the free-form interest answers back to the
// client.
type PersonalInterests struct {
	FavoriteSport       string `json:"favorite_sport"`
	PassionateActivity  string `json:"passionate_activity"`
	BillionairePurchase string `json:"billionaire_purchase"`
}

// EmergingCareers generates future-oriented career suggestions from the
// persisted profile and the user's stated interests.
func (s *Service) EmergingCareers(ctx context.Context, userName string, interests narrative.Interests) (result *EmergingCareersResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_emerging_careers", map[string]any{"user": userName}, started, err)
	}()

	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	if len(profile.AllHollandCodes) == 0 || len(profile.DSEScores) == 0 || len(profile.MatchingIndustries) == 0 {
		return nil, validationf("Missing required user data in survey responses")
	}

	generated, err := s.narrative.EmergingCareers(ctx, profile, interests)
	if err != nil {
		return nil, err
	}
	return &EmergingCareersResult{
		UserName:           userName,
		HollandCode:        profile.AllHollandCodes[0],
		DSEAverage:         match.Round2(avg(profile.DSEScores)),
		MatchingIndustries: profile.MatchingIndustries,
		PersonalInterests: PersonalInterests{
			FavoriteSport:       interests.FavoriteSport,
			PassionateActivity:  interests.PassionateActivity,
			BillionairePurchase: interests.BillionairePurchase,
		},
		EmergingCareers: generated.Paths,
		TotalPaths:      generated.Total,
	}, nil
}

// PersonalityResult is the personality-analysis response.
type PersonalityResult struct {
	UserName     string   `json:"user_name"`
	HollandCodes []string `json:"holland_codes"`
	Analysis     string   `json:"analysis"`
}

// PersonalityAnalysis generates a personality write-up from the
// persisted profile.
func (s *Service) PersonalityAnalysis(ctx context.Context, userName string) (result *PersonalityResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "get_personality_analysis", map[string]any{"user": userName}, started, err)
	}()

	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	if len(profile.AllHollandCodes) == 0 {
		return nil, validationf("Holland codes not found in user data")
	}

	analysis, err := s.narrative.PersonalityAnalysis(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &PersonalityResult{
		UserName:     userName,
		HollandCodes: profile.AllHollandCodes,
		Analysis:     analysis,
	}, nil
}

// ChatResult is one chat turn's response.
type ChatResult struct {
	Status         string `json:"status"`
	Response       string `json:"response"`
	PresetQuestion int    `json:"preset_question,omitempty"`
}

// Chat answers one counseling question grounded in the persisted
// profile. A preset question number substitutes a canned question for
// the free-form message.
func (s *Service) Chat(ctx context.Context, userName string, input narrative.ChatInput) (result *ChatResult, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "chat", map[string]any{"user": userName, "preset": input.PresetQuestion}, started, err)
	}()

	profile, err := s.profiles.Get(ctx, userName)
	if err != nil {
		return nil, err
	}
	if profile.HollandCode == "" || len(profile.MatchingIndustries) == 0 || len(profile.DSEScores) == 0 {
		return nil, validationf("Missing required user data")
	}

	reply, err := s.narrative.Chat(ctx, profile, input)
	if err != nil {
		return nil, err
	}
	return &ChatResult{
		Status:         "success",
		Response:       reply,
		PresetQuestion: input.PresetQuestion,
	}, nil
}
