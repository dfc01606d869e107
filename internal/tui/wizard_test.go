package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/client"
	"peorisk/internal/domain"
	"peorisk/internal/workers/lookup"
)

type fakeAPI struct {
	questions []domain.Question
	submitErr error
	submitted []domain.Answers
}

func (f *fakeAPI) Questions(context.Context) ([]domain.Question, error) {
	return f.questions, nil
}

func (f *fakeAPI) Lookup(context.Context, string, string) (domain.LookupRecord, error) {
	return domain.LookupRecord{}, nil
}

func (f *fakeAPI) Submit(_ context.Context, answers domain.Answers) (client.SubmitResult, error) {
	f.submitted = append(f.submitted, answers)
	if f.submitErr != nil {
		return client.SubmitResult{}, f.submitErr
	}
	return client.SubmitResult{ID: 7, SubmittedAt: time.Now(), Message: "Assessment submitted successfully"}, nil
}

func testQuestions() []domain.Question {
	ca := domain.Eq("company_profile.state", "CA")
	return []domain.Question{
		{ID: domain.ProfileQuestionID, Text: "Company?", Type: domain.TypeCompanyProfile},
		{ID: "industry", Text: "Industry?", Type: domain.TypeSelect, Options: []domain.Option{
			{Label: "Construction", Value: "construction"},
			{Label: "Technology", Value: "technology"},
		}},
		{ID: "calOshaPermit", Text: "Cal/OSHA permit?", Type: domain.TypeRadio, Condition: &ca, Options: []domain.Option{
			{Label: "Yes", Value: "yes"},
			{Label: "No", Value: "no"},
		}},
		{ID: "notes", Text: "Notes", Type: domain.TypeTextarea, Optional: true},
	}
}

// runCommands executes cmd and feeds resulting messages back into the model,
// skipping blink and batch plumbing.
func runCommands(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runCommands(t, m, c)
		}
	case questionsLoadedMsg, submitDoneMsg:
		_, next := m.Update(msg)
		runCommands(t, m, next)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func loaded(t *testing.T, api *fakeAPI) *Model {
	t.Helper()
	m := New(context.Background(), api, time.Millisecond)
	m.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	runCommands(t, m, m.Init())
	require.Equal(t, screenAsking, m.screen)
	return m
}

func fillProfile(m *Model, name, state string) {
	typeText(m, name)
	press(m, tea.KeyTab)
	typeText(m, state)
}

func TestWizardBlocksIncompleteProfile(t *testing.T) {
	m := loaded(t, &fakeAPI{questions: testQuestions()})

	typeText(m, "Acme")
	press(m, tea.KeyEnter)

	assert.True(t, m.blocked)
	assert.Contains(t, m.View(), "needs an answer")
	q, _ := m.wizard.Current()
	assert.Equal(t, domain.ProfileQuestionID, q.ID)
}

func TestWizardSkipsHiddenQuestionAndSubmits(t *testing.T) {
	api := &fakeAPI{questions: testQuestions()}
	m := loaded(t, api)

	fillProfile(m, "Acme", "NY")
	press(m, tea.KeyEnter)

	q, _ := m.wizard.Current()
	require.Equal(t, "industry", q.ID)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	q, _ = m.wizard.Current()
	assert.Equal(t, "notes", q.ID, "calOshaPermit is hidden outside CA")
	press(m, tea.KeyEnter)

	require.Equal(t, screenReview, m.screen)
	runCommands(t, m, press(m, tea.KeyEnter))

	require.Len(t, api.submitted, 1)
	v, _ := api.submitted[0].Get("industry").Scalar()
	assert.Equal(t, "technology", v)
	assert.True(t, api.submitted[0].Get("notes").IsAbsent())
	assert.Equal(t, screenDone, m.screen)
	assert.Contains(t, m.View(), "Assessment submitted successfully")
}

func TestWizardBackRestoresAnswer(t *testing.T) {
	m := loaded(t, &fakeAPI{questions: testQuestions()})
	fillProfile(m, "Acme", "CA")
	press(m, tea.KeyEnter)
	press(m, tea.KeyEnter)

	q, _ := m.wizard.Current()
	require.Equal(t, "calOshaPermit", q.ID)

	press(m, tea.KeyEsc)
	assert.True(t, m.Answers().Get("calOshaPermit").IsAbsent(), "leaving an untouched choice stores nothing")
	q, _ = m.wizard.Current()
	assert.Equal(t, "industry", q.ID)
	assert.Equal(t, 0, m.choice)
	v, _ := m.Answers().Get("industry").Scalar()
	assert.Equal(t, "construction", v)

	press(m, tea.KeyEsc)
	assert.Equal(t, "Acme", m.input.Value())
}

func TestWizardSubmitFailureIsReportedOnce(t *testing.T) {
	api := &fakeAPI{
		questions: []domain.Question{{ID: "notes", Text: "Notes", Type: domain.TypeText, Optional: true}},
		submitErr: errors.New("server returned 500: Failed to submit assessment"),
	}
	m := loaded(t, api)
	press(m, tea.KeyEnter)
	runCommands(t, m, press(m, tea.KeyEnter))

	assert.Equal(t, screenFailed, m.screen)
	assert.Len(t, api.submitted, 1)
	assert.Contains(t, m.View(), "Failed to submit assessment")

	api.submitErr = nil
	runCommands(t, m, press(m, tea.KeyEnter))
	assert.Len(t, api.submitted, 2)
	assert.Equal(t, screenDone, m.screen)
}

func TestWizardLookupResult(t *testing.T) {
	m := loaded(t, &fakeAPI{questions: testQuestions()})
	fillProfile(m, "Acme", "FL")

	rec := domain.LookupRecord{Agency: "Florida Division of Corporations", FilingDate: "2015-03-01"}

	m.Update(lookupMsg(lookup.Result{Name: "Acme", State: "TX", Record: rec}))
	assert.Nil(t, m.record, "stale result is ignored")

	m.Update(lookupMsg(lookup.Result{Name: "Acme", State: "FL", Record: rec}))
	require.NotNil(t, m.record)
	assert.Contains(t, m.View(), "Florida Division of Corporations")

	p, _ := m.Answers().Get(domain.ProfileQuestionID).Profile()
	assert.Equal(t, "9", p.YearsInBusiness)

	typeText(m, "X")
	assert.Nil(t, m.record, "editing the state clears the shown record")
}

func TestWizardQuitStopsLookups(t *testing.T) {
	m := loaded(t, &fakeAPI{questions: testQuestions()})
	m.Attach(func(tea.Msg) {})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizardBackKeepsPickedChoice(t *testing.T) {
	m := loaded(t, &fakeAPI{questions: testQuestions()})
	fillProfile(m, "Acme", "CA")
	press(m, tea.KeyEnter)
	press(m, tea.KeyEnter)

	press(m, tea.KeyDown)
	press(m, tea.KeyEsc)
	v, ok := m.Answers().Get("calOshaPermit").Scalar()
	require.True(t, ok)
	assert.Equal(t, "no", v)

	press(m, tea.KeyEnter)
	q, _ := m.wizard.Current()
	require.Equal(t, "calOshaPermit", q.ID)
	assert.Equal(t, 1, m.choice)
	assert.True(t, m.chosen)
}
