package ports

import (
	"context"

	"peorisk/internal/domain"
)

// Assessments assembles and stores completed questionnaires.
type Assessments interface {
	Submit(ctx context.Context, answers domain.Answers) (domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	Get(ctx context.Context, id int64) (domain.Submission, error)
}

// Authoring edits a working copy of the question set.
type Authoring interface {
	Questions() []domain.Question
	Add(q domain.Question) (domain.Question, error)
	Edit(id string, patch domain.Question) (domain.Question, error)
	Delete(id string, confirmed bool) error
	Reorder(from, to int) error
	SaveAll(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Companies provides registry-style lookups for display.
type Companies interface {
	Lookup(ctx context.Context, name, state string) (domain.LookupRecord, error)
}

// Sessions hosts server-side wizard sessions.
type Sessions interface {
	Start(ctx context.Context) (domain.Session, error)
	Get(id string) (domain.Session, error)
	Answer(id, questionID string, a domain.Answer) (domain.Session, error)
	Next(id string) (domain.Session, error)
	Back(id string) (domain.Session, error)
	Submit(ctx context.Context, id string) (domain.Session, error)
}
