package httpadapter

import (
	"context"

	api "peorisk/internal/api"
)

func (s *Server) LookupCompany(ctx context.Context, req api.LookupCompanyRequestObject) (api.LookupCompanyResponseObject, error) {
	rec, err := s.companies.Lookup(ctx, req.Params.Name, req.Params.State)
	if err != nil {
		return nil, err
	}
	return api.LookupCompany200JSONResponse(rec), nil
}
