// Package tui is a terminal rendition of the questionnaire wizard. It runs
// the navigation policy locally and talks to the server for questions,
// company lookups and the final submission.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"peorisk/internal/client"
	"peorisk/internal/domain"
	"peorisk/internal/services/companies"
	"peorisk/internal/services/navigation"
	"peorisk/internal/workers/lookup"
)

// API is the slice of the HTTP client the wizard needs.
type API interface {
	Questions(ctx context.Context) ([]domain.Question, error)
	Lookup(ctx context.Context, name, state string) (domain.LookupRecord, error)
	Submit(ctx context.Context, answers domain.Answers) (client.SubmitResult, error)
}

type screen int

const (
	screenLoading screen = iota
	screenAsking
	screenReview
	screenSubmitting
	screenDone
	screenFailed
)

type questionsLoadedMsg struct {
	questions []domain.Question
	err       error
}

type lookupMsg lookup.Result

type submitDoneMsg struct {
	result client.SubmitResult
	err    error
}

var profileLabels = map[string]string{
	"companyName":     "Company name",
	"state":           "State (FL, CA, NY, TX, other)",
	"employees":       "Employees",
	"yearsInBusiness": "Years in business",
	"size":            "Annual revenue band",
}

// Model is the bubbletea model for one questionnaire run.
type Model struct {
	ctx      context.Context
	api      API
	debounce time.Duration
	now      func() time.Time

	screen    screen
	wizard    *navigation.Wizard
	answers   domain.Answers
	input     textinput.Model
	choice    int
	chosen    bool
	field     int
	blocked   bool
	record    *domain.LookupRecord
	recordFor [2]string
	searching bool
	lookups   *lookup.Debouncer
	notify    func(tea.Msg)
	result    client.SubmitResult
	err       error
}

func New(ctx context.Context, api API, debounce time.Duration) *Model {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()
	return &Model{
		ctx:      ctx,
		api:      api,
		debounce: debounce,
		now:      time.Now,
		answers:  domain.Answers{},
		input:    ti,
	}
}

// Attach wires asynchronous lookup results into the running program. Call it
// with tea.Program.Send before Run.
func (m *Model) Attach(send func(tea.Msg)) {
	m.notify = send
	m.lookups = lookup.New(m.api, m.debounce, func(r lookup.Result) {
		if m.notify != nil {
			m.notify(lookupMsg(r))
		}
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadQuestions())
}

func (m *Model) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		qs, err := m.api.Questions(m.ctx)
		return questionsLoadedMsg{questions: qs, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.screen = screenFailed
			return m, nil
		}
		m.wizard = navigation.NewWizard(msg.questions)
		m.enter()
		return m, nil

	case lookupMsg:
		m.applyLookup(lookup.Result(msg))
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.screen = screenFailed
			return m, nil
		}
		m.result = msg.result
		m.screen = screenDone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopLookups()
		return m, tea.Quit
	}
	switch m.screen {
	case screenAsking:
		return m.handleAskingKey(msg)
	case screenReview:
		switch msg.String() {
		case "enter":
			m.screen = screenSubmitting
			return m, m.submit()
		case "q", "esc":
			m.stopLookups()
			return m, tea.Quit
		}
	case screenDone:
		m.stopLookups()
		return m, tea.Quit
	case screenFailed:
		switch msg.String() {
		case "enter", "r":
			if m.wizard != nil && m.wizard.State().IsComplete {
				m.err = nil
				m.screen = screenSubmitting
				return m, m.submit()
			}
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleAskingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, _ := m.wizard.Current()
	switch msg.String() {
	case "enter":
		m.chosen = true
		m.commitInput(q)
		m.advance()
		return m, nil
	case "esc", "ctrl+b":
		m.commitInput(q)
		if m.wizard.Back() {
			m.enter()
		}
		return m, nil
	}

	switch {
	case q.Type.NeedsOptions():
		switch msg.String() {
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
			m.chosen = true
		case "down", "j":
			if m.choice < len(q.Options)-1 {
				m.choice++
			}
			m.chosen = true
		}
		return m, nil
	case q.Type == domain.TypeCompanyProfile:
		switch msg.String() {
		case "tab", "down":
			m.commitInput(q)
			m.field = (m.field + 1) % len(domain.ProfileFields)
			m.loadInput(q)
			return m, nil
		case "shift+tab", "up":
			m.commitInput(q)
			m.field = (m.field + len(domain.ProfileFields) - 1) % len(domain.ProfileFields)
			m.loadInput(q)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q.Type == domain.TypeCompanyProfile {
		m.commitInput(q)
	}
	return m, cmd
}

// enter prepares the screen for the wizard's current position.
func (m *Model) enter() {
	m.blocked = false
	q, ok := m.wizard.Current()
	if !ok {
		m.screen = screenReview
		m.input.Blur()
		return
	}
	m.screen = screenAsking
	m.field = 0
	m.choice = 0
	m.chosen = false
	if q.Type.NeedsOptions() {
		if v, ok := m.answers.Get(q.ID).Scalar(); ok {
			for i, o := range q.Options {
				if o.Value == v {
					m.choice = i
					m.chosen = true
				}
			}
		}
	}
	m.input.Placeholder = q.Placeholder
	m.input.Focus()
	m.loadInput(q)
}

func (m *Model) loadInput(q domain.Question) {
	switch {
	case q.Type == domain.TypeCompanyProfile:
		p, _ := m.answers.Get(q.ID).Profile()
		v, _ := p.Field(domain.ProfileFields[m.field])
		m.input.SetValue(v)
	case q.Type.NeedsOptions():
		m.input.SetValue("")
	default:
		m.input.SetValue(m.answers.Get(q.ID).String())
	}
	m.input.CursorEnd()
}

// commitInput writes the visible input back into the answers. A choice is
// only stored once the user has picked or confirmed one.
func (m *Model) commitInput(q domain.Question) {
	switch {
	case q.Type.NeedsOptions():
		if m.chosen && len(q.Options) > 0 {
			m.answers.Set(q.ID, domain.Scalar(q.Options[m.choice].Value))
		}
	case q.Type == domain.TypeCompanyProfile:
		p, _ := m.answers.Get(q.ID).Profile()
		name := domain.ProfileFields[m.field]
		updated, err := p.WithField(name, m.input.Value())
		if err != nil {
			return
		}
		m.answers.Set(q.ID, domain.Profile(updated))
		if name == "companyName" || name == "state" {
			m.triggerLookup(updated)
		}
	default:
		v := strings.TrimSpace(m.input.Value())
		if v == "" {
			m.answers.Set(q.ID, domain.Answer{})
			return
		}
		m.answers.Set(q.ID, domain.Scalar(v))
	}
}

func (m *Model) triggerLookup(p domain.CompanyProfile) {
	if m.record != nil && (p.CompanyName != m.recordFor[0] || p.State != m.recordFor[1]) {
		m.record = nil
	}
	m.searching = m.record == nil && companies.Eligible(p.CompanyName, p.State)
	if m.lookups != nil {
		m.lookups.Trigger(m.ctx, p.CompanyName, p.State)
	}
}

// applyLookup shows a result only if it still matches the typed name and
// state, then fills yearsInBusiness when it is empty.
func (m *Model) applyLookup(r lookup.Result) {
	p, _ := m.answers.Get(domain.ProfileQuestionID).Profile()
	if r.Name != p.CompanyName || r.State != p.State {
		return
	}
	m.searching = false
	if r.Err != nil {
		m.record = nil
		return
	}
	rec := r.Record
	m.record = &rec
	m.recordFor = [2]string{r.Name, r.State}
	filled := companies.AutoFillYears(p, rec, m.now())
	m.answers.Set(domain.ProfileQuestionID, domain.Profile(filled))
	if q, ok := m.wizard.Current(); ok && q.Type == domain.TypeCompanyProfile && domain.ProfileFields[m.field] == "yearsInBusiness" {
		m.loadInput(q)
	}
}

func (m *Model) advance() {
	if err := m.wizard.Next(m.answers); err != nil {
		m.blocked = true
		return
	}
	m.enter()
}

func (m *Model) submit() tea.Cmd {
	answers := m.answers.Clone()
	return func() tea.Msg {
		res, err := m.api.Submit(m.ctx, answers)
		return submitDoneMsg{result: res, err: err}
	}
}

func (m *Model) stopLookups() {
	if m.lookups != nil {
		m.lookups.Stop()
	}
}

// Answers returns a copy of the collected answers.
func (m *Model) Answers() domain.Answers { return m.answers.Clone() }

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PEO Risk Assessment"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenLoading:
		b.WriteString(hintStyle.Render("Loading questions..."))
	case screenAsking:
		m.viewQuestion(&b)
	case screenReview:
		b.WriteString("All questions answered.\n\n")
		b.WriteString(hintStyle.Render("enter: submit  •  q: quit without submitting"))
	case screenSubmitting:
		b.WriteString(hintStyle.Render("Submitting assessment..."))
	case screenDone:
		b.WriteString(okStyle.Render(m.result.Message))
		fmt.Fprintf(&b, "\nReference #%d, %s\n\n", m.result.ID, m.result.SubmittedAt.Format(time.RFC1123))
		b.WriteString(hintStyle.Render("press any key to exit"))
	case screenFailed:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("r: retry submission  •  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewQuestion(b *strings.Builder) {
	q, _ := m.wizard.Current()
	visible := navigation.Visible(m.wizard.Questions(), m.answers)
	pos := 0
	for i, v := range visible {
		if v.ID == q.ID {
			pos = i + 1
		}
	}
	b.WriteString(hintStyle.Render(fmt.Sprintf("Question %d of %d", pos, len(visible))))
	b.WriteString("\n")
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n")
	if q.Description != "" {
		b.WriteString(hintStyle.Render(q.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case q.Type.NeedsOptions():
		for i, o := range q.Options {
			cursor := "  "
			line := o.Label
			if i == m.choice {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	case q.Type == domain.TypeCompanyProfile:
		p, _ := m.answers.Get(q.ID).Profile()
		for i, name := range domain.ProfileFields {
			label := profileLabels[name]
			if i == m.field {
				fmt.Fprintf(b, "%s\n%s\n", selectedStyle.Render(label), m.input.View())
				continue
			}
			v, _ := p.Field(name)
			fmt.Fprintf(b, "%s: %s\n", label, v)
		}
		m.viewLookup(b)
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.blocked {
		b.WriteString(errorStyle.Render("This question needs an answer before continuing."))
		b.WriteString("\n")
	}
	hint := "enter: next  •  esc: back  •  ctrl+c: quit"
	if q.Optional {
		hint = "optional  •  " + hint
	}
	b.WriteString(hintStyle.Render(hint))
}

func (m *Model) viewLookup(b *strings.Builder) {
	switch {
	case m.record != nil:
		r := m.record
		lines := []string{
			okStyle.Render("Verified: " + r.Agency),
			fmt.Sprintf("Status: %s   Filed: %s   Doc #: %s", r.Status, r.FilingDate, r.DocNumber),
			fmt.Sprintf("Entity: %s   Last report: %s", r.EntityType, r.LastReport),
			"Address: " + r.Address,
			"Officers: " + strings.Join(r.Officers, ", "),
			hintStyle.Render(r.SourceURL),
		}
		b.WriteString(lookupStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	case m.searching:
		b.WriteString(hintStyle.Render("Searching state registry..."))
		b.WriteString("\n")
	}
}
