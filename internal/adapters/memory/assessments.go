package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"peorisk/internal/domain"
	"peorisk/internal/ports"
)

// AssessmentRepository keeps submissions in memory. The server uses it when
// no DATABASE_URL is configured in development; tests use it everywhere.
type AssessmentRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Submission
	now    func() time.Time
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{rows: map[int64]domain.Submission{}, now: time.Now}
}

func (r *AssessmentRepository) Insert(ctx context.Context, s domain.Submission) (int64, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = r.now().UTC()
	}
	r.rows[s.ID] = s
	return s.ID, s.SubmittedAt, nil
}

func (r *AssessmentRepository) List(ctx context.Context) ([]domain.Submission, error) {
	r.mu.RLock()
	out := make([]domain.Submission, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (r *AssessmentRepository) Get(ctx context.Context, id int64) (domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rows[id]
	if !ok {
		return domain.Submission{}, ports.ErrNotFound
	}
	return s, nil
}
