package httpadapter

import (
	"context"

	api "peorisk/internal/api"
	"peorisk/internal/domain"
	"peorisk/internal/services/navigation"
)

func (s *Server) ListQuestions(ctx context.Context, _ api.ListQuestionsRequestObject) (api.ListQuestionsResponseObject, error) {
	qs, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	return api.ListQuestions200JSONResponse(nonNil(qs)), nil
}

// RevealQuestions applies the progressive reveal policy to the posted answers.
func (s *Server) RevealQuestions(ctx context.Context, req api.RevealQuestionsRequestObject) (api.RevealQuestionsResponseObject, error) {
	qs, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	var answers domain.Answers
	if req.Body != nil {
		answers = req.Body.Answers
	}
	revealed, progress := navigation.Reveal(qs, answers)
	return api.RevealQuestions200JSONResponse{
		Questions: nonNil(revealed),
		Progress: api.Progress{
			Visible:  progress.Visible,
			Answered: progress.Answered,
			Complete: progress.Complete,
		},
	}, nil
}

func nonNil(qs []domain.Question) []domain.Question {
	if qs == nil {
		return []domain.Question{}
	}
	return qs
}
