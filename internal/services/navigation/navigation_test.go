package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
)

func cond(c domain.Condition) *domain.Condition { return &c }

func abc() []domain.Question {
	return []domain.Question{
		{ID: "A", Text: "A?", Type: domain.TypeText},
		{ID: "B", Text: "B?", Type: domain.TypeText, Condition: cond(domain.Eq("state", "CA"))},
		{ID: "C", Text: "C?", Type: domain.TypeText},
	}
}

func TestWizardNextSkipsHiddenQuestion(t *testing.T) {
	w := NewWizard(abc())
	answers := domain.Answers{"state": domain.Scalar("NY"), "A": domain.Scalar("a")}

	require.NoError(t, w.Next(answers))
	q, ok := w.Current()
	require.True(t, ok)
	assert.Equal(t, "C", q.ID)
	assert.Equal(t, []int{0}, w.State().History)
}

func TestWizardNextVisitsConditionalWhenTrue(t *testing.T) {
	w := NewWizard(abc())
	answers := domain.Answers{"state": domain.Scalar("CA"), "A": domain.Scalar("a")}

	require.NoError(t, w.Next(answers))
	q, _ := w.Current()
	assert.Equal(t, "B", q.ID)
}

func TestWizardBlockedUntilAnswered(t *testing.T) {
	w := NewWizard(abc())
	answers := domain.Answers{}

	assert.False(t, w.CanAdvance(answers))
	err := w.Next(answers)
	assert.ErrorIs(t, err, ErrBlocked)
	assert.Equal(t, apperr.CodeBlocked, apperr.CodeOf(err))
	assert.Equal(t, 0, w.State().CurrentIndex)

	answers.Set("A", domain.Scalar(""))
	assert.False(t, w.CanAdvance(answers))
	answers.Set("A", domain.Scalar("x"))
	assert.True(t, w.CanAdvance(answers))
}

func TestWizardOptionalDoesNotBlock(t *testing.T) {
	qs := abc()
	qs[0].Optional = true
	w := NewWizard(qs)

	require.NoError(t, w.Next(domain.Answers{}))
	q, _ := w.Current()
	assert.Equal(t, "C", q.ID)
}

func TestWizardProfileNeedsNameAndState(t *testing.T) {
	qs := []domain.Question{
		{ID: domain.ProfileQuestionID, Text: "Company", Type: domain.TypeCompanyProfile},
		{ID: "industry", Text: "Industry", Type: domain.TypeText},
	}
	w := NewWizard(qs)
	answers := domain.Answers{domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme"})}
	assert.ErrorIs(t, w.Next(answers), ErrBlocked)

	answers.Set(domain.ProfileQuestionID, domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA"}))
	assert.NoError(t, w.Next(answers))
}

func TestWizardCompletesAtEnd(t *testing.T) {
	w := NewWizard(abc())
	answers := domain.Answers{"state": domain.Scalar("NY"), "A": domain.Scalar("a"), "C": domain.Scalar("c")}

	require.NoError(t, w.Next(answers))
	require.NoError(t, w.Next(answers))
	assert.True(t, w.State().IsComplete)
	_, ok := w.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Next(answers), ErrComplete)
	assert.False(t, w.Back())
}

func TestWizardEmptyListStartsComplete(t *testing.T) {
	w := NewWizard(nil)
	assert.True(t, w.State().IsComplete)
	assert.False(t, w.CanAdvance(nil))
}

func TestWizardBackThenNextReturnsToSameIndex(t *testing.T) {
	answers := domain.Answers{
		"state": domain.Scalar("CA"),
		"A":     domain.Scalar("a"),
		"B":     domain.Scalar("b"),
	}
	for _, steps := range []int{1, 2} {
		w := NewWizard(abc())
		for i := 0; i < steps; i++ {
			require.NoError(t, w.Next(answers))
		}
		start := w.State().CurrentIndex

		require.True(t, w.Back())
		require.NoError(t, w.Next(answers))
		assert.Equal(t, start, w.State().CurrentIndex)
	}
}

func TestWizardBackOnEmptyHistoryIsNoOp(t *testing.T) {
	w := NewWizard(abc())
	assert.False(t, w.Back())
	assert.Equal(t, 0, w.State().CurrentIndex)
}

func TestWizardStaleHiddenAnswerDoesNotBlock(t *testing.T) {
	w := NewWizard(abc())
	answers := domain.Answers{"state": domain.Scalar("CA"), "A": domain.Scalar("a")}
	require.NoError(t, w.Next(answers))
	answers.Set("B", domain.Scalar("permit"))
	require.True(t, w.Back())

	answers.Set("state", domain.Scalar("TX"))
	require.NoError(t, w.Next(answers))
	q, _ := w.Current()
	assert.Equal(t, "C", q.ID)
	assert.Equal(t, "permit", answers.Get("B").String())
}

func TestRestore(t *testing.T) {
	w, err := Restore(abc(), State{CurrentIndex: 2, History: []int{0}})
	require.NoError(t, err)
	require.True(t, w.Back())
	assert.Equal(t, 0, w.State().CurrentIndex)

	_, err = Restore(abc(), State{CurrentIndex: 7})
	assert.Error(t, err)
	_, err = Restore(abc(), State{CurrentIndex: 1, History: []int{-1}})
	assert.Error(t, err)
}

func TestStateIsCopied(t *testing.T) {
	w := NewWizard(abc())
	require.NoError(t, w.Next(domain.Answers{"A": domain.Scalar("a")}))
	s := w.State()
	s.History[0] = 99
	assert.Equal(t, []int{0}, w.State().History)
}

func TestRevealIsPrefixOfVisible(t *testing.T) {
	qs := append(abc(), domain.Question{ID: "D", Text: "D?", Type: domain.TypeRadio, Optional: true})
	answerSets := []domain.Answers{
		{},
		{"A": domain.Scalar("a")},
		{"A": domain.Scalar("a"), "state": domain.Scalar("CA")},
		{"A": domain.Scalar("a"), "C": domain.Scalar("c")},
		{"A": domain.Scalar("a"), "C": domain.Scalar("c"), "state": domain.Scalar("NY")},
		{"C": domain.Scalar("c"), "D": domain.Scalar("d")},
		{"A": domain.Scalar("a"), "B": domain.Scalar("b"), "C": domain.Scalar("c"), "D": domain.Scalar("d"), "state": domain.Scalar("CA")},
	}
	for _, answers := range answerSets {
		revealed, _ := Reveal(qs, answers)
		visible := Visible(qs, answers)
		require.LessOrEqual(t, len(revealed), len(visible))
		for i := range revealed {
			assert.Equal(t, visible[i].ID, revealed[i].ID)
		}
	}
}

func TestRevealStopsAtFirstUnanswered(t *testing.T) {
	revealed, p := Reveal(abc(), domain.Answers{"C": domain.Scalar("c")})
	require.Len(t, revealed, 1)
	assert.Equal(t, "A", revealed[0].ID)
	assert.Equal(t, Progress{Visible: 2, Answered: 0, Complete: false}, p)

	revealed, p = Reveal(abc(), domain.Answers{"A": domain.Scalar("a"), "C": domain.Scalar("c")})
	assert.Len(t, revealed, 2)
	assert.Equal(t, Progress{Visible: 2, Answered: 2, Complete: true}, p)
}

func TestRevealRecomputesVisibility(t *testing.T) {
	answers := domain.Answers{"A": domain.Scalar("a"), "state": domain.Scalar("CA")}
	revealed, _ := Reveal(abc(), answers)
	assert.Equal(t, "B", revealed[len(revealed)-1].ID)

	answers.Set("state", domain.Scalar("NY"))
	revealed, _ = Reveal(abc(), answers)
	assert.Equal(t, "C", revealed[len(revealed)-1].ID)
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrBlocked, ErrComplete))
}
