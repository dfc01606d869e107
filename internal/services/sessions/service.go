// Package sessions hosts wizard runs on the server so thin clients can drive
// the questionnaire one question at a time.
package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
	"peorisk/internal/logger"
	"peorisk/internal/metrics"
	"peorisk/internal/ports"
	"peorisk/internal/services/navigation"
)

var (
	ErrNotFound      = apperr.NotFound("session not found")
	ErrNotCurrent    = apperr.Invalid("only the current question can be answered")
	ErrWrongKind     = apperr.Invalid("answer shape does not match the question type")
	ErrNotComplete   = apperr.Conflict("questionnaire is not complete")
	ErrSubmitted     = apperr.Conflict("session already submitted")
	ErrSubmitPending = apperr.Conflict("submission already in progress")
)

type session struct {
	id         string
	wizard     *navigation.Wizard
	answers    domain.Answers
	submission *domain.Submission
	submitting bool
	updatedAt  time.Time
}

type Service struct {
	questions   ports.QuestionStore
	assessments ports.Assessments
	log         logger.Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func New(questions ports.QuestionStore, assessments ports.Assessments, log logger.Logger) *Service {
	return &Service{
		questions:   questions,
		assessments: assessments,
		log:         log,
		now:         time.Now,
		sessions:    map[string]*session{},
	}
}

// Start opens a session over the committed question set as it is now. Later
// saves do not affect running sessions.
func (s *Service) Start(ctx context.Context) (domain.Session, error) {
	qs, err := s.questions.List(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("start session: %w", err)
	}
	sess := &session{
		id:        uuid.NewString(),
		wizard:    navigation.NewWizard(qs),
		answers:   domain.Answers{},
		updatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.WizardSessionsActive.Set(float64(n))
	s.log.Debug("session started", map[string]interface{}{"session": sess.id, "questions": len(qs)})
	return sess.view(), nil
}

func (s *Service) Get(id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	return sess.view(), nil
}

// Answer records a for the current question. Answers to any other question
// are rejected.
func (s *Service) Answer(id, questionID string, a domain.Answer) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	q, ok := sess.wizard.Current()
	if !ok {
		return domain.Session{}, navigation.ErrComplete
	}
	if q.ID != questionID {
		return domain.Session{}, fmt.Errorf("answer %q (current %q): %w", questionID, q.ID, ErrNotCurrent)
	}
	if !a.IsAbsent() && (a.Kind() == domain.KindProfile) != (q.Type == domain.TypeCompanyProfile) {
		return domain.Session{}, fmt.Errorf("answer %q: %w", questionID, ErrWrongKind)
	}
	sess.answers.Set(questionID, a)
	sess.updatedAt = s.now().UTC()
	return sess.view(), nil
}

func (s *Service) Next(id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	if err := sess.wizard.Next(sess.answers); err != nil {
		return sess.view(), err
	}
	sess.updatedAt = s.now().UTC()
	return sess.view(), nil
}

func (s *Service) Back(id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.wizard.Back() {
		sess.updatedAt = s.now().UTC()
	}
	return sess.view(), nil
}

// Submit stores the answers of a completed session exactly once.
func (s *Service) Submit(ctx context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	sess, err := s.lookup(id)
	switch {
	case err != nil:
	case sess.submission != nil:
		err = ErrSubmitted
	case sess.submitting:
		err = ErrSubmitPending
	case !sess.wizard.State().IsComplete:
		err = ErrNotComplete
	}
	if err != nil {
		s.mu.Unlock()
		return domain.Session{}, err
	}
	sess.submitting = true
	answers := sess.answers.Clone()
	s.mu.Unlock()

	sub, err := s.assessments.Submit(ctx, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.submitting = false
	if err != nil {
		return sess.view(), err
	}
	sess.submission = &sub
	sess.updatedAt = s.now().UTC()
	s.log.Info("session submitted", map[string]interface{}{"session": id, "assessment": sub.ID})
	return sess.view(), nil
}

// Expire drops sessions idle for longer than maxAge and returns how many were
// removed.
func (s *Service) Expire(maxAge time.Duration) int {
	cutoff := s.now().UTC().Add(-maxAge)
	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(cutoff) && !sess.submitting {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()
	metrics.WizardSessionsActive.Set(float64(n))
	return removed
}

// lookup must be called with mu held.
func (s *Service) lookup(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return sess, nil
}

func (sess *session) view() domain.Session {
	st := sess.wizard.State()
	v := domain.Session{
		ID:           sess.id,
		CurrentIndex: st.CurrentIndex,
		History:      st.History,
		IsComplete:   st.IsComplete,
		CanAdvance:   sess.wizard.CanAdvance(sess.answers),
		Answers:      sess.answers.Clone(),
		UpdatedAt:    sess.updatedAt,
	}
	if q, ok := sess.wizard.Current(); ok {
		q = q.Clone()
		v.Current = &q
	}
	if sess.submission != nil {
		sub := *sess.submission
		v.Submission = &sub
	}
	return v
}
