package assessments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/adapters/memory"
	"peorisk/internal/apperr"
	"peorisk/internal/domain"
	"peorisk/internal/logger"
)

func TestSubmitListGet(t *testing.T) {
	ctx := context.Background()
	svc := New(memory.NewAssessmentRepository(), logger.NewTestLogger(t))
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	first, err := svc.Submit(ctx, domain.Answers{domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA"})})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, domain.Answers{domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Globex", State: "NY"})})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Globex", all[0].CompanyName)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

type brokenRepo struct{ memory.AssessmentRepository }

func (*brokenRepo) Insert(context.Context, domain.Submission) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("connection refused")
}

func TestSubmitStorageFailure(t *testing.T) {
	svc := New(&brokenRepo{}, logger.NewNoOpLogger())
	_, err := svc.Submit(context.Background(), domain.Answers{})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}
