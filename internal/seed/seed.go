// Package seed provides the questionnaire definitions the store starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"peorisk/internal/domain"
)

//go:embed questions.yaml
var defaultQuestions []byte

// Default returns the embedded questionnaire.
func Default() ([]domain.Question, error) {
	qs, err := Parse(defaultQuestions)
	if err != nil {
		return nil, fmt.Errorf("seed: embedded questions: %w", err)
	}
	return qs, nil
}

// Load reads a questionnaire from a YAML file, falling back to the embedded
// one when path is empty.
func Load(path string) ([]domain.Question, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	qs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return qs, nil
}

// Parse decodes a YAML sequence of question definitions.
func Parse(data []byte) ([]domain.Question, error) {
	var qs []domain.Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i, q := range qs {
		if q.Condition == nil {
			continue
		}
		if err := q.Condition.Validate(); err != nil {
			return nil, fmt.Errorf("question %d (%s): condition: %w", i, q.ID, err)
		}
	}
	return qs, nil
}
