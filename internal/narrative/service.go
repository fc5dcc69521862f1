package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
	"github.com/ontrackhk/ontrack/internal/llm"
)

var (
	// ErrInvalidPresetQuestion indicates an unknown preset question number.
	ErrInvalidPresetQuestion = errors.New("invalid preset question number")

	// ErrEmptyMessage indicates a chat request with no message text.
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// Interests carries the free-form personal answers used to flavor
// emerging-career suggestions.
type Interests struct {
	FavoriteSport       string
	PassionateActivity  string
	BillionairePurchase string
}

// CareerPathsResult is the structured output of a career-path generation.
type CareerPathsResult struct {
	Paths []domain.CareerPath
	Total int
}

// ChatInput is one turn of the counseling chat. PresetQuestion, when
// non-zero, selects a canned question and overrides Message.
type ChatInput struct {
	Message        string
	PresetQuestion int
}

// Service generates career narratives from a user's survey profile.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// CareerPaths generates concrete career suggestions for a Holland code
// and its matched industries.
func (s *Service) CareerPaths(ctx context.Context, hollandCode string, industries []string) (*CareerPathsResult, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCareerPaths,
		SystemPrompt: careerPathsSystemPrompt,
		UserPrompt:   buildCareerPathsPrompt(hollandCode, industries),
	})
	if err != nil {
		return nil, fmt.Errorf("generating career paths: %w", err)
	}
	paths := ParseCareerPaths(resp.Text)
	return &CareerPathsResult{Paths: paths, Total: len(paths)}, nil
}

// EmergingCareers generates future-oriented career suggestions using
// the profile plus the user's stated interests.
func (s *Service) EmergingCareers(ctx context.Context, p *domain.Profile, interests Interests) (*CareerPathsResult, error) {
	primary := ""
	if len(p.AllHollandCodes) > 0 {
		primary = p.AllHollandCodes[0]
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskEmergingCareers,
		SystemPrompt: emergingCareersSystemPrompt,
		UserPrompt:   buildEmergingCareersPrompt(primary, avgDSE(p.DSEScores), p.MatchingIndustries, interests),
	})
	if err != nil {
		return nil, fmt.Errorf("generating emerging careers: %w", err)
	}
	paths := ParseCareerPaths(resp.Text)
	return &CareerPathsResult{Paths: paths, Total: len(paths)}, nil
}

// PersonalityAnalysis generates a Traditional Chinese personality
// write-up from the profile's codes and tallies.
func (s *Service) PersonalityAnalysis(ctx context.Context, p *domain.Profile) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPersonality,
		SystemPrompt: personalitySystemPrompt,
		UserPrompt:   buildPersonalityPrompt(p.AllHollandCodes, p.MatchingIndustries, p.CategoryScores),
	})
	if err != nil {
		return "", fmt.Errorf("generating personality analysis: %w", err)
	}
	return resp.Text, nil
}

// Chat answers one counseling question grounded in the user's profile.
func (s *Service) Chat(ctx context.Context, p *domain.Profile, input ChatInput) (string, error) {
	avg := avgDSE(p.DSEScores)

	message := input.Message
	if input.PresetQuestion != 0 {
		preset, ok := presetQuestions(p, avg)[input.PresetQuestion]
		if !ok {
			return "", ErrInvalidPresetQuestion
		}
		message = preset
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatPrompt(p, avg, message),
	})
	if err != nil {
		return "", fmt.Errorf("generating chat response: %w", err)
	}
	return resp.Text, nil
}

func avgDSE(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
