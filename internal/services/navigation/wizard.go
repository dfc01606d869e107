package navigation

import (
	"fmt"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
)

var (
	ErrBlocked  = apperr.Blocked("current question requires an answer")
	ErrComplete = apperr.Conflict("questionnaire is already complete")
)

// State is the serializable position of a wizard.
type State struct {
	CurrentIndex int   `json:"currentIndex"`
	History      []int `json:"history"`
	IsComplete   bool  `json:"isComplete"`
}

func (s State) clone() State {
	s.History = append([]int{}, s.History...)
	return s
}

// Wizard walks the full question list one visible question at a time.
// It is not safe for concurrent use.
type Wizard struct {
	questions []domain.Question
	state     State
}

func NewWizard(questions []domain.Question) *Wizard {
	return &Wizard{
		questions: questions,
		state:     State{History: []int{}, IsComplete: len(questions) == 0},
	}
}

// Restore rebuilds a wizard over questions from a previously captured state.
func Restore(questions []domain.Question, s State) (*Wizard, error) {
	if !s.IsComplete && (s.CurrentIndex < 0 || s.CurrentIndex >= len(questions)) {
		return nil, fmt.Errorf("restore wizard: index %d out of range [0,%d)", s.CurrentIndex, len(questions))
	}
	for _, h := range s.History {
		if h < 0 || h >= len(questions) {
			return nil, fmt.Errorf("restore wizard: history index %d out of range", h)
		}
	}
	return &Wizard{questions: questions, state: s.clone()}, nil
}

func (w *Wizard) State() State { return w.state.clone() }

func (w *Wizard) Questions() []domain.Question { return w.questions }

// Current returns the question at the cursor, or false once complete.
func (w *Wizard) Current() (domain.Question, bool) {
	if w.state.IsComplete {
		return domain.Question{}, false
	}
	return w.questions[w.state.CurrentIndex], true
}

// CanAdvance reports whether Next would move: the current question is
// answered or optional.
func (w *Wizard) CanAdvance(answers domain.Answers) bool {
	q, ok := w.Current()
	if !ok {
		return false
	}
	return q.Optional || q.Answered(answers)
}

// Next advances to the next question visible under answers, or marks the
// wizard complete when none remains.
func (w *Wizard) Next(answers domain.Answers) error {
	if w.state.IsComplete {
		return ErrComplete
	}
	if !w.CanAdvance(answers) {
		return ErrBlocked
	}
	from := w.state.CurrentIndex
	for i := from + 1; i < len(w.questions); i++ {
		if w.questions[i].Visible(answers) {
			w.state.History = append(w.state.History, from)
			w.state.CurrentIndex = i
			return nil
		}
	}
	w.state.IsComplete = true
	return nil
}

// Back returns to the previously shown question. It reports false when there
// is nothing to go back to.
func (w *Wizard) Back() bool {
	if w.state.IsComplete || len(w.state.History) == 0 {
		return false
	}
	last := len(w.state.History) - 1
	w.state.CurrentIndex = w.state.History[last]
	w.state.History = w.state.History[:last]
	return true
}
