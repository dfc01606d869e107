package httpadapter

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	api "peorisk/internal/api"
)

// An answers object maps question ids to strings, numbers, booleans or null.
// Only company_profile may hold an object.
const answersBodySchema = `{
	"type": "object",
	"required": ["answers"],
	"properties": {
		"answers": {
			"type": "object",
			"properties": {
				"company_profile": {
					"type": ["object", "null"],
					"properties": {
						"companyName":     {"type": ["string", "null"]},
						"state":           {"type": ["string", "null"]},
						"employees":       {"type": ["string", "number", "null"]},
						"yearsInBusiness": {"type": ["string", "number", "null"]},
						"size":            {"type": ["string", "null"]}
					}
				}
			},
			"additionalProperties": {"type": ["string", "number", "boolean", "null"]}
		}
	}
}`

type bodySchema struct {
	schema *gojsonschema.Schema
}

func newBodySchema(src string) (*bodySchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &bodySchema{schema: schema}, nil
}

// validate returns the schema violations of body. Decoded answers encode
// back to the submitted JSON, so this sees what the client sent.
func (b *bodySchema) validate(body interface{}) ([]api.FieldIssue, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	result, err := b.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	issues := make([]api.FieldIssue, len(result.Errors()))
	for i, desc := range result.Errors() {
		issues[i] = api.FieldIssue{Field: desc.Field(), Message: desc.Description()}
	}
	return issues, nil
}

// bodyError carries schema violations to writeError.
type bodyError struct {
	message string
	issues  []api.FieldIssue
}

func (e *bodyError) Error() string { return e.message }

// validateAnswers is a strict middleware that checks answer bodies against
// the schema before the handler runs.
func (s *Server) validateAnswers(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		var body *api.AnswersBody
		message := "invalid answers"
		switch req := request.(type) {
		case api.SubmitAssessmentRequestObject:
			body = req.Body
			message = "invalid assessment"
		case api.RevealQuestionsRequestObject:
			body = req.Body
		default:
			return f(ctx, w, r, request)
		}
		issues, err := s.answersBody.validate(body)
		if err != nil {
			return nil, &bodyError{message: err.Error()}
		}
		if len(issues) > 0 {
			s.log.Debug("answers rejected", map[string]interface{}{"operation": operationID, "issues": len(issues)})
			return nil, &bodyError{message: message, issues: issues}
		}
		return f(ctx, w, r, request)
	}
}
