package ports

import (
	"context"
	"time"

	"peorisk/internal/domain"
)

// QuestionStore holds the committed, ordered question set used by navigation.
type QuestionStore interface {
	List(ctx context.Context) ([]domain.Question, error)
	// Replace swaps the whole set in one step.
	Replace(ctx context.Context, questions []domain.Question) error
}

// AssessmentRepository persists submitted assessments.
type AssessmentRepository interface {
	Insert(ctx context.Context, s domain.Submission) (id int64, submittedAt time.Time, err error)
	// List returns submissions newest first.
	List(ctx context.Context) ([]domain.Submission, error)
	Get(ctx context.Context, id int64) (domain.Submission, error)
}

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }
