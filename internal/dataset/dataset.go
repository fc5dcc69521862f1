// Package dataset loads the three static lookup tables the survey
// depends on: the question pool, the industry mapping, and the JUPAS
// programme catalog. All three are read once at startup and immutable
// for the process lifetime.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	QuestionsFile = "questions_pool.yaml"
	IndustryFile  = "industry_mapping.yaml"
	JupasFile     = "jupas.yaml"
)

// MinPoolSize is the smallest question pool that can serve all four
// sampled pages (4 pages x 10 questions, without replacement).
const MinPoolSize = 40

// Store holds the loaded lookup tables.
type Store struct {
	questions []domain.Question
	mapping   []domain.IndustryMapping
	catalog   map[string][]domain.Program
}

// Load reads and validates the three YAML tables from dir.
func Load(dir string) (*Store, error) {
	questions, err := loadQuestions(filepath.Join(dir, QuestionsFile))
	if err != nil {
		return nil, err
	}
	mapping, err := loadMapping(filepath.Join(dir, IndustryFile))
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(filepath.Join(dir, JupasFile))
	if err != nil {
		return nil, err
	}

	store, err := New(questions, mapping, catalog)
	if err != nil {
		return nil, err
	}
	if len(questions) < MinPoolSize {
		return nil, fmt.Errorf("question pool has %d questions, need at least %d to serve all survey pages", len(questions), MinPoolSize)
	}
	return store, nil
}

// New builds a Store from already-parsed tables, validating categories
// and industry names. Unlike Load it does not enforce MinPoolSize, so
// tests can construct small pools.
func New(questions []domain.Question, mapping []domain.IndustryMapping, catalog map[string][]domain.Program) (*Store, error) {
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("question %d: empty text", i)
		}
		if !domain.ValidCategories[q.Category] {
			return nil, fmt.Errorf("question %d (%q): invalid category %q", i, q.Text, q.Category)
		}
	}
	for i, entry := range mapping {
		if strings.TrimSpace(entry.Industry) == "" {
			return nil, fmt.Errorf("industry mapping entry %d: empty industry name", i)
		}
	}
	return &Store{questions: questions, mapping: mapping, catalog: catalog}, nil
}

// Questions returns a copy of the question pool in load order.
func (s *Store) Questions() []domain.Question {
	return append([]domain.Question(nil), s.questions...)
}

// PoolSize returns the number of questions in the pool.
func (s *Store) PoolSize() int { return len(s.questions) }

// Mapping returns a copy of the industry mapping entries.
func (s *Store) Mapping() []domain.IndustryMapping {
	return append([]domain.IndustryMapping(nil), s.mapping...)
}

// Catalog returns the industry to programme-list catalog. Callers must
// treat it as read-only.
func (s *Store) Catalog() map[string][]domain.Program { return s.catalog }

type questionsDoc struct {
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	Question string `yaml:"question"`
	Category string `yaml:"category"`
}

func loadQuestions(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question pool: %w", err)
	}
	var doc questionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing question pool: %w", err)
	}
	questions := make([]domain.Question, len(doc.Questions))
	for i, q := range doc.Questions {
		questions[i] = domain.Question{
			Text:     q.Question,
			Category: domain.Category(strings.ToUpper(strings.TrimSpace(q.Category))),
		}
	}
	return questions, nil
}

type mappingEntry struct {
	Industry     string   `yaml:"industry"`
	HollandCodes []string `yaml:"holland_codes"`
}

func loadMapping(path string) ([]domain.IndustryMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading industry mapping: %w", err)
	}
	var entries []mappingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing industry mapping: %w", err)
	}
	mapping := make([]domain.IndustryMapping, len(entries))
	for i, e := range entries {
		mapping[i] = domain.IndustryMapping{
			Industry:     e.Industry,
			HollandCodes: e.HollandCodes,
		}
	}
	return mapping, nil
}

type programEntry struct {
	ProgrammeCode    string     `yaml:"programme_code"`
	ProgrammeName    string     `yaml:"programme_name"`
	Institution      string     `yaml:"institution"`
	MedianScoreIndex scoreIndex `yaml:"median_score_index"`
}

// scoreIndex parses a median score that may be a number, a numeric
// string, or the "/" sentinel for missing data.
type scoreIndex struct {
	value *float64
}

func (s *scoreIndex) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err == nil {
		s.value = &f
		return nil
	}
	var raw string
	if err := node.Decode(&raw); err != nil {
		return nil
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		s.value = &v
	}
	return nil
}

func loadCatalog(path string) (map[string][]domain.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading JUPAS catalog: %w", err)
	}
	var doc map[string][]programEntry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JUPAS catalog: %w", err)
	}
	catalog := make(map[string][]domain.Program, len(doc))
	for industry, entries := range doc {
		programs := make([]domain.Program, len(entries))
		for i, e := range entries {
			programs[i] = domain.Program{
				ProgrammeCode:    e.ProgrammeCode,
				ProgrammeName:    e.ProgrammeName,
				Institution:      e.Institution,
				MedianScoreIndex: e.MedianScoreIndex.value,
			}
		}
		catalog[industry] = programs
	}
	return catalog, nil
}
