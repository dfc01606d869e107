// Package httpadapter exposes the questionnaire services over HTTP through
// the generated chi strict server.
package httpadapter

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "peorisk/internal/api"
	"peorisk/internal/logger"
	"peorisk/internal/ports"
)

// Pinger reports backend health for /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Questions   ports.QuestionStore
	Assessments ports.Assessments
	Authoring   ports.Authoring
	Sessions    ports.Sessions
	Companies   ports.Companies
	Health      Pinger
	Log         logger.Logger
}

// Server implements the generated StrictServerInterface.
type Server struct {
	questions   ports.QuestionStore
	assessments ports.Assessments
	authoring   ports.Authoring
	sessions    ports.Sessions
	companies   ports.Companies
	health      Pinger
	log         logger.Logger
	answersBody *bodySchema
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(d Deps) (*Server, error) {
	answers, err := newBodySchema(answersBodySchema)
	if err != nil {
		return nil, err
	}
	return &Server{
		questions:   d.Questions,
		assessments: d.Assessments,
		authoring:   d.Authoring,
		sessions:    d.Sessions,
		companies:   d.Companies,
		health:      d.Health,
		log:         d.Log,
		answersBody: answers,
	}, nil
}

// Routes returns a chi.Router mounting the generated handlers behind the
// shared middleware.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Use(limitBody)

	r.Handle("/metrics", promhttp.Handler())

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.validateAnswers}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.badRequest,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.badRequest,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			s.log.WithError(err).Warn("health check failed", nil)
			return api.GetHealthz503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}
