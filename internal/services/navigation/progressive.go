// Package navigation implements the two questionnaire presentation policies:
// the progressive reveal list and the single-question wizard.
package navigation

import "peorisk/internal/domain"

// Visible filters questions to those whose condition holds for answers,
// preserving order.
func Visible(questions []domain.Question, answers domain.Answers) []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if q.Visible(answers) {
			out = append(out, q)
		}
	}
	return out
}

type Progress struct {
	Visible  int  `json:"visible"`
	Answered int  `json:"answered"`
	Complete bool `json:"complete"`
}

// Reveal returns the answered prefix of the visible questions plus the first
// unanswered one.
func Reveal(questions []domain.Question, answers domain.Answers) ([]domain.Question, Progress) {
	visible := Visible(questions, answers)
	n := answeredPrefix(visible, answers)
	progress := Progress{Visible: len(visible), Answered: n, Complete: n == len(visible)}
	if n < len(visible) {
		n++
	}
	return visible[:n], progress
}

// ProgressOf reports counts without materializing the revealed slice.
func ProgressOf(questions []domain.Question, answers domain.Answers) Progress {
	_, p := Reveal(questions, answers)
	return p
}

func answeredPrefix(visible []domain.Question, answers domain.Answers) int {
	for i, q := range visible {
		if !q.Answered(answers) {
			return i
		}
	}
	return len(visible)
}
