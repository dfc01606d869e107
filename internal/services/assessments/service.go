// Package assessments assembles completed questionnaires and hands them to
// the assessment repository.
package assessments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
	"peorisk/internal/logger"
	"peorisk/internal/metrics"
	"peorisk/internal/ports"
)

var ErrNotFound = apperr.NotFound("assessment not found")

type Service struct {
	repo ports.AssessmentRepository
	log  logger.Logger
	now  func() time.Time
}

func New(repo ports.AssessmentRepository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Submit assembles answers and stores the result in a single insert.
func (s *Service) Submit(ctx context.Context, answers domain.Answers) (domain.Submission, error) {
	sub, err := Assemble(answers, s.now())
	if err != nil {
		metrics.AssessmentsSubmitted.WithLabelValues("invalid").Inc()
		return domain.Submission{}, err
	}
	id, at, err := s.repo.Insert(ctx, sub)
	if err != nil {
		metrics.AssessmentsSubmitted.WithLabelValues("error").Inc()
		s.log.WithError(err).Error("error submitting assessment", map[string]interface{}{"company": sub.CompanyName})
		return domain.Submission{}, fmt.Errorf("insert assessment: %w", err)
	}
	sub.ID, sub.SubmittedAt = id, at
	metrics.AssessmentsSubmitted.WithLabelValues("ok").Inc()
	s.log.Info("assessment submitted", map[string]interface{}{"id": id, "company": sub.CompanyName})
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Submission, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Submission, error) {
	sub, err := s.repo.Get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Submission{}, fmt.Errorf("assessment %d: %w", id, ErrNotFound)
	}
	return sub, err
}
