// Package memory holds process-local adapters. Nothing here survives a
// restart.
package memory

import (
	"context"
	"sync"

	"peorisk/internal/domain"
)

type QuestionStore struct {
	mu        sync.RWMutex
	questions []domain.Question
}

func NewQuestionStore(seed []domain.Question) *QuestionStore {
	return &QuestionStore{questions: domain.CloneQuestions(seed)}
}

func (s *QuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneQuestions(s.questions), nil
}

func (s *QuestionStore) Replace(ctx context.Context, questions []domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.questions = domain.CloneQuestions(questions)
	s.mu.Unlock()
	return nil
}
