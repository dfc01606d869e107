package httpadapter

import (
	"context"
	"net/http"

	api "peorisk/internal/api"
	"peorisk/internal/domain"
	"peorisk/internal/services/authoring"
)

// toView adds the editor rendering of the condition.
func toView(q domain.Question) api.QuestionView {
	v := api.QuestionView{
		Id:        q.ID,
		Text:      q.Text,
		Type:      api.QuestionType(q.Type),
		Condition: q.Condition,
	}
	if len(q.Options) > 0 {
		v.Options = &q.Options
	}
	if q.Placeholder != "" {
		v.Placeholder = &q.Placeholder
	}
	if q.Description != "" {
		v.Description = &q.Description
	}
	if q.Optional {
		v.Optional = &q.Optional
	}
	if q.Condition != nil {
		text := q.Condition.String()
		v.ConditionText = &text
	}
	return v
}

func toViews(qs []domain.Question) []api.QuestionView {
	out := make([]api.QuestionView, len(qs))
	for i, q := range qs {
		out[i] = toView(q)
	}
	return out
}

// questionFromInput accepts either a structured condition or conditionText
// in the editor syntax. conditionText wins when both are present.
func questionFromInput(in api.QuestionInput) (domain.Question, error) {
	q := domain.Question{
		ID:          value(in.Id),
		Text:        in.Text,
		Type:        domain.QuestionType(in.Type),
		Options:     value(in.Options),
		Placeholder: value(in.Placeholder),
		Description: value(in.Description),
		Optional:    value(in.Optional),
		Condition:   in.Condition,
	}
	if in.ConditionText == nil {
		return q, nil
	}
	c, err := domain.ParseCondition(*in.ConditionText)
	if err != nil {
		return q, authoring.ValidationErrors{{QuestionID: q.ID, Field: "condition", Message: err.Error()}}
	}
	q.Condition = c
	return q, nil
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (s *Server) AdminListQuestions(ctx context.Context, _ api.AdminListQuestionsRequestObject) (api.AdminListQuestionsResponseObject, error) {
	return api.AdminListQuestions200JSONResponse(toViews(s.authoring.Questions())), nil
}

func (s *Server) AdminAddQuestion(ctx context.Context, req api.AdminAddQuestionRequestObject) (api.AdminAddQuestionResponseObject, error) {
	if req.Body == nil {
		return api.AdminAddQuestiondefaultJSONResponse{StatusCode: http.StatusBadRequest, Body: api.ErrorBody{Message: "missing body"}}, nil
	}
	q, err := questionFromInput(*req.Body)
	if err != nil {
		return nil, err
	}
	added, err := s.authoring.Add(q)
	if err != nil {
		return nil, err
	}
	return api.AdminAddQuestion201JSONResponse(toView(added)), nil
}

func (s *Server) AdminEditQuestion(ctx context.Context, req api.AdminEditQuestionRequestObject) (api.AdminEditQuestionResponseObject, error) {
	if req.Body == nil {
		return api.AdminEditQuestiondefaultJSONResponse{StatusCode: http.StatusBadRequest, Body: api.ErrorBody{Message: "missing body"}}, nil
	}
	q, err := questionFromInput(*req.Body)
	if err != nil {
		return nil, err
	}
	edited, err := s.authoring.Edit(req.Id, q)
	if err != nil {
		return nil, err
	}
	return api.AdminEditQuestion200JSONResponse(toView(edited)), nil
}

func (s *Server) AdminDeleteQuestion(ctx context.Context, req api.AdminDeleteQuestionRequestObject) (api.AdminDeleteQuestionResponseObject, error) {
	if err := s.authoring.Delete(req.Id, value(req.Params.Confirm)); err != nil {
		return nil, err
	}
	return api.AdminDeleteQuestion204Response{}, nil
}

func (s *Server) AdminReorderQuestions(ctx context.Context, req api.AdminReorderQuestionsRequestObject) (api.AdminReorderQuestionsResponseObject, error) {
	if req.Body == nil {
		return api.AdminReorderQuestionsdefaultJSONResponse{StatusCode: http.StatusBadRequest, Body: api.ErrorBody{Message: "missing body"}}, nil
	}
	if err := s.authoring.Reorder(req.Body.From, req.Body.To); err != nil {
		return nil, err
	}
	return api.AdminReorderQuestions200JSONResponse(toViews(s.authoring.Questions())), nil
}

func (s *Server) AdminSaveQuestions(ctx context.Context, _ api.AdminSaveQuestionsRequestObject) (api.AdminSaveQuestionsResponseObject, error) {
	if err := s.authoring.SaveAll(ctx); err != nil {
		return nil, err
	}
	return api.AdminSaveQuestions200JSONResponse{
		Message: "Questions saved",
		Count:   len(s.authoring.Questions()),
	}, nil
}

func (s *Server) AdminResetQuestions(ctx context.Context, _ api.AdminResetQuestionsRequestObject) (api.AdminResetQuestionsResponseObject, error) {
	if err := s.authoring.Reset(ctx); err != nil {
		return nil, err
	}
	return api.AdminResetQuestions200JSONResponse(toViews(s.authoring.Questions())), nil
}
