package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/domain"
)

func TestClient(t *testing.T) {
	var submitted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/questions":
			_, _ = io.WriteString(w, `[{"id":"industry","text":"Industry?","type":"text"}]`)
		case "/api/company-lookup":
			assert.Equal(t, "Acme Corp", r.URL.Query().Get("name"))
			_, _ = io.WriteString(w, `{"agency":"Texas Secretary of State","filingDate":"2018-03-15"}`)
		case "/api/assessments":
			b, _ := io.ReadAll(r.Body)
			submitted = string(b)
			_, _ = io.WriteString(w, `{"id":7,"submittedAt":"2025-01-02T03:04:05Z","message":"Assessment submitted successfully"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	ctx := context.Background()

	qs, err := c.Questions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Question{{ID: "industry", Text: "Industry?", Type: domain.TypeText}}, qs)

	rec, err := c.Lookup(ctx, "Acme Corp", "TX")
	require.NoError(t, err)
	assert.Equal(t, "Texas Secretary of State", rec.Agency)

	res, err := c.Submit(ctx, domain.Answers{"industry": domain.Scalar("tech")})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.JSONEq(t, `{"answers":{"industry":"tech"}}`, submitted)
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"An error occurred while submitting the assessment"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Submit(context.Background(), domain.Answers{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Contains(t, se.Error(), "An error occurred")
}
