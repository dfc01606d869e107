// Package authoring edits a working copy of the question set and commits it
// to the question store.
package authoring

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
	"peorisk/internal/logger"
	"peorisk/internal/metrics"
	"peorisk/internal/ports"
)

var (
	ErrDuplicateID          = apperr.Conflict("question id already exists")
	ErrImmutableID          = apperr.Invalid("question id cannot be changed")
	ErrConfirmationRequired = apperr.Invalid("deleting a question requires confirmation")
	ErrNotFound             = apperr.NotFound("question not found")
	ErrIndexOutOfRange      = apperr.Invalid("question index out of range")
)

// Service owns the working copy. Navigation never sees it until SaveAll.
type Service struct {
	store ports.QuestionStore
	log   logger.Logger
	now   func() time.Time

	mu      sync.Mutex
	working []domain.Question
}

// New loads the working copy from the committed store.
func New(ctx context.Context, store ports.QuestionStore, log logger.Logger) (*Service, error) {
	s := &Service{store: store, log: log, now: time.Now}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Questions returns a snapshot of the working copy.
func (s *Service) Questions() []domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneQuestions(s.working)
}

// Add appends q. An empty id is replaced with question_<unix millis>.
func (s *Service) Add(q domain.Question) (domain.Question, error) {
	q = normalize(q.Clone())

	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		q.ID = s.freshID()
	} else if s.indexOf(q.ID) >= 0 {
		return domain.Question{}, fmt.Errorf("add %q: %w", q.ID, ErrDuplicateID)
	}
	if errs := validateQuestion(len(s.working), q); len(errs) > 0 {
		return domain.Question{}, errs
	}
	s.working = append(s.working, q)
	s.log.Info("question added", map[string]interface{}{"id": q.ID, "type": string(q.Type)})
	return q.Clone(), nil
}

// Edit replaces every mutable field of the question with the given id.
func (s *Service) Edit(id string, patch domain.Question) (domain.Question, error) {
	if patch.ID != "" && patch.ID != id {
		return domain.Question{}, fmt.Errorf("edit %q: %w", id, ErrImmutableID)
	}
	patch = normalize(patch.Clone())
	patch.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Question{}, fmt.Errorf("edit %q: %w", id, ErrNotFound)
	}
	if errs := validateQuestion(i, patch); len(errs) > 0 {
		return domain.Question{}, errs
	}
	s.working[i] = patch
	s.log.Debug("question edited", map[string]interface{}{"id": id})
	return patch.Clone(), nil
}

// Delete removes a question. The caller must pass confirmed once the user
// has acknowledged the destructive action.
func (s *Service) Delete(id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete %q: %w", id, ErrConfirmationRequired)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	s.working = append(s.working[:i], s.working[i+1:]...)
	s.log.Info("question deleted", map[string]interface{}{"id": id})
	return nil
}

// Reorder moves the question at from to position to, keeping the relative
// order of the others.
func (s *Service) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.working)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder %d -> %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}
	q := s.working[from]
	rest := append(s.working[:from:from], s.working[from+1:]...)
	out := make([]domain.Question, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, q)
	out = append(out, rest[to:]...)
	s.working = out
	return nil
}

// SaveAll validates the working set and replaces the committed store with it.
func (s *Service) SaveAll(ctx context.Context) error {
	s.mu.Lock()
	snapshot := domain.CloneQuestions(s.working)
	s.mu.Unlock()

	if err := Validate(snapshot); err != nil {
		return err
	}
	if err := s.store.Replace(ctx, snapshot); err != nil {
		s.log.WithError(err).Error("question set save failed", nil)
		return fmt.Errorf("save questions: %w", err)
	}
	metrics.QuestionSetSaves.Inc()
	s.log.Info("question set saved", map[string]interface{}{"count": len(snapshot)})
	return nil
}

// Reset discards unsaved edits and reloads the committed set.
func (s *Service) Reset(ctx context.Context) error {
	qs, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	s.mu.Lock()
	s.working = domain.CloneQuestions(qs)
	s.mu.Unlock()
	return nil
}

func (s *Service) indexOf(id string) int {
	for i, q := range s.working {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// freshID must be called with mu held.
func (s *Service) freshID() string {
	ms := s.now().UnixMilli()
	for {
		id := "question_" + strconv.FormatInt(ms, 10)
		if s.indexOf(id) < 0 {
			return id
		}
		ms++
	}
}

// normalize drops options from types that do not use them.
func normalize(q domain.Question) domain.Question {
	if !q.Type.NeedsOptions() {
		q.Options = nil
	}
	return q
}
