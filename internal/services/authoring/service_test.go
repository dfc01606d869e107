package authoring

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

func seedQuestions() []domain.Question {
	return []domain.Question{
		{ID: "a", Text: "A?", Type: domain.TypeText},
		{ID: "b", Text: "B?", Type: domain.TypeRadio, Options: []domain.Option{{Label: "Yes", Value: "yes"}, {Label: "No", Value: "no"}}},
		{ID: "c", Text: "C?", Type: domain.TypeTextarea},
		{ID: "d", Text: "D?", Type: domain.TypeNumber},
	}
}

func newService(t *testing.T) (*Service, *memory.QuestionStore) {
	t.Helper()
	store := memory.NewQuestionStore(seedQuestions())
	s, err := New(context.Background(), store, logger.NewTestLogger(t))
	require.NoError(t, err)
	return s, store
}

func ids(qs []domain.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestAddDuplicateIDLeavesStoreUnchanged(t *testing.T) {
	s, _ := newService(t)
	before := s.Questions()

	_, err := s.Add(domain.Question{ID: "b", Text: "Other", Type: domain.TypeText})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, before, s.Questions())
}

func TestAddAssignsTimestampID(t *testing.T) {
	s, _ := newService(t)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	q1, err := s.Add(domain.Question{Text: "New?", Type: domain.TypeText})
	require.NoError(t, err)
	q2, err := s.Add(domain.Question{Text: "Newer?", Type: domain.TypeText})
	require.NoError(t, err)

	assert.Equal(t, "question_1700000000000", q1.ID)
	assert.Equal(t, "question_1700000000001", q2.ID)
	assert.Equal(t, []string{"a", "b", "c", "d", q1.ID, q2.ID}, ids(s.Questions()))
}

func TestAddValidates(t *testing.T) {
	s, _ := newService(t)
	_, err := s.Add(domain.Question{ID: "x", Type: domain.TypeSelect})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"text", "options"}, fields)
	assert.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
	assert.Len(t, s.Questions(), 4)
}

func TestEditKeepsIDAndClearsOptions(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Edit("b", domain.Question{ID: "renamed", Text: "B?", Type: domain.TypeText})
	assert.ErrorIs(t, err, ErrImmutableID)

	got, err := s.Edit("b", domain.Question{Text: "Now free text", Type: domain.TypeText, Options: []domain.Option{{Label: "stale", Value: "stale"}}})
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Nil(t, got.Options)
	assert.Equal(t, "Now free text", s.Questions()[1].Text)

	_, err = s.Edit("missing", domain.Question{Text: "x", Type: domain.TypeText})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s, _ := newService(t)

	assert.ErrorIs(t, s.Delete("a", false), ErrConfirmationRequired)
	assert.Len(t, s.Questions(), 4)

	require.NoError(t, s.Delete("a", true))
	assert.Equal(t, []string{"b", "c", "d"}, ids(s.Questions()))
	assert.ErrorIs(t, s.Delete("a", true), ErrNotFound)
}

func TestReorder(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 0, []string{"a", "b", "c", "d"}},
		{2, 2, []string{"a", "b", "c", "d"}},
		{0, 3, []string{"b", "c", "d", "a"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 1, []string{"a", "c", "b", "d"}},
	}
	for _, tt := range tests {
		s, _ := newService(t)
		require.NoError(t, s.Reorder(tt.from, tt.to))
		assert.Equal(t, tt.want, ids(s.Questions()), "%d -> %d", tt.from, tt.to)
	}
}

func TestReorderOutOfRange(t *testing.T) {
	s, _ := newService(t)
	assert.ErrorIs(t, s.Reorder(-1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Reorder(0, 4), ErrIndexOutOfRange)
}

func TestWorkingCopyIsolatedUntilSave(t *testing.T) {
	ctx := context.Background()
	s, store := newService(t)

	require.NoError(t, s.Delete("c", true))
	committed, _ := store.List(ctx)
	assert.Len(t, committed, 4)

	require.NoError(t, s.SaveAll(ctx))
	committed, _ = store.List(ctx)
	assert.Equal(t, []string{"a", "b", "d"}, ids(committed))
}

func TestResetDiscardsEdits(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)
	require.NoError(t, s.Reorder(0, 3))

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Questions()))
}

type failingStore struct{ memory.QuestionStore }

func (*failingStore) Replace(context.Context, []domain.Question) error {
	return errors.New("redis unavailable")
}

func TestSaveAllPropagatesStoreFailure(t *testing.T) {
	s, err := New(context.Background(), &failingStore{}, logger.NewNoOpLogger())
	require.NoError(t, err)
	_, err = s.Add(domain.Question{ID: "x", Text: "X?", Type: domain.TypeText})
	require.NoError(t, err)
	assert.Error(t, s.SaveAll(context.Background()))
}

func TestValidateSet(t *testing.T) {
	assert.NoError(t, Validate(seedQuestions()))

	qs := append(seedQuestions(),
		domain.Question{ID: "a", Text: "dup", Type: domain.TypeText},
		domain.Question{ID: "e", Text: "E?", Type: domain.TypeSelect, Options: []domain.Option{{Label: "One", Value: "1"}, {Label: "Uno", Value: "1"}, {Label: "", Value: "2"}}},
		domain.Question{ID: "f", Text: "F?", Type: "slider"},
	)
	bad := domain.Eq("", "x")
	qs = append(qs, domain.Question{ID: "g", Text: "G?", Type: domain.TypeText, Condition: &bad})

	err := Validate(qs)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	got := map[string]bool{}
	for _, fe := range verrs {
		got[fe.QuestionID+"/"+fe.Field] = true
	}
	assert.True(t, got["a/id"])
	assert.True(t, got["e/options[1].value"])
	assert.True(t, got["e/options[2].label"])
	assert.True(t, got["f/type"])
	assert.True(t, got["g/condition"])
}
