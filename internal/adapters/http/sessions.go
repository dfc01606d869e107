package httpadapter

import (
	"context"
	"errors"
	"net/http"

	api "peorisk/internal/api"
	"peorisk/internal/services/navigation"
)

func (s *Server) StartSession(ctx context.Context, _ api.StartSessionRequestObject) (api.StartSessionResponseObject, error) {
	sess, err := s.sessions.Start(ctx)
	if err != nil {
		return nil, err
	}
	return api.StartSession201JSONResponse(sess), nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse(sess), nil
}

func (s *Server) AnswerSession(ctx context.Context, req api.AnswerSessionRequestObject) (api.AnswerSessionResponseObject, error) {
	if req.Body == nil {
		return api.AnswerSessiondefaultJSONResponse{StatusCode: http.StatusBadRequest, Body: api.ErrorBody{Message: "missing body"}}, nil
	}
	sess, err := s.sessions.Answer(req.Id, req.Body.QuestionId, req.Body.Answer)
	if err != nil {
		return nil, err
	}
	return api.AnswerSession200JSONResponse(sess), nil
}

// NextSession answers 409 with the unchanged session when the current
// question still needs an answer.
func (s *Server) NextSession(ctx context.Context, req api.NextSessionRequestObject) (api.NextSessionResponseObject, error) {
	sess, err := s.sessions.Next(req.Id)
	if errors.Is(err, navigation.ErrBlocked) {
		return api.NextSession409JSONResponse{Message: err.Error(), Session: sess}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.NextSession200JSONResponse(sess), nil
}

func (s *Server) BackSession(ctx context.Context, req api.BackSessionRequestObject) (api.BackSessionResponseObject, error) {
	sess, err := s.sessions.Back(req.Id)
	if err != nil {
		return nil, err
	}
	return api.BackSession200JSONResponse(sess), nil
}

func (s *Server) SubmitSession(ctx context.Context, req api.SubmitSessionRequestObject) (api.SubmitSessionResponseObject, error) {
	sess, err := s.sessions.Submit(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.SubmitSession200JSONResponse(sess), nil
}
