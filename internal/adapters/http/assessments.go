package httpadapter

import (
	"context"

	api "peorisk/internal/api"
)

const submitFailedMessage = "An error occurred while submitting the assessment"

func (s *Server) SubmitAssessment(ctx context.Context, req api.SubmitAssessmentRequestObject) (api.SubmitAssessmentResponseObject, error) {
	if req.Body == nil {
		return api.SubmitAssessment400JSONResponse{Message: "missing body"}, nil
	}
	sub, err := s.assessments.Submit(ctx, req.Body.Answers)
	if err != nil {
		s.log.WithError(err).Error("error submitting assessment", nil)
		return api.SubmitAssessment500JSONResponse{Message: submitFailedMessage}, nil
	}
	return api.SubmitAssessment200JSONResponse{
		Id:          sub.ID,
		SubmittedAt: sub.SubmittedAt,
		Message:     "Assessment submitted successfully",
	}, nil
}

func (s *Server) ListAssessments(ctx context.Context, _ api.ListAssessmentsRequestObject) (api.ListAssessmentsResponseObject, error) {
	all, err := s.assessments.List(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []api.Submission{}
	}
	return api.ListAssessments200JSONResponse(all), nil
}

func (s *Server) GetAssessment(ctx context.Context, req api.GetAssessmentRequestObject) (api.GetAssessmentResponseObject, error) {
	sub, err := s.assessments.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetAssessment200JSONResponse(sub), nil
}
