package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/textlens/internal"
	"codeberg.org/snonux/textlens/internal/metrics"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/testutil"
)

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(ctx context.Context, text string) (*processor.Result, error) {
	return nil, errors.New("scorer exploded")
}

func newTestServer(t *testing.T, tr *testutil.MockTranslator, checks ...HealthCheck) *Server {
	t.Helper()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	sc := &testutil.MockScorer{Default: sentiment.Score{Polarity: 0.3, Subjectivity: 0.6}}
	p := processor.NewProcessor(tr, sc, nil, processor.DefaultOptions(), m)
	return NewServer(DefaultConfig(), p, reg, checks)
}

func doRequest(s *Server, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_JSON(t *testing.T) {
	sample := testutil.SpanishSample
	tr := &testutil.MockTranslator{Responses: map[string]string{sample.Original: sample.Translated}}
	s := newTestServer(t, tr)

	body, _ := json.Marshal(map[string]string{"text": sample.Original})
	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/json", string(body))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result processor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, sample.Original, result.OriginalText)
	assert.Equal(t, sample.Translated, result.TranslatedText)
	assert.InDelta(t, 0.3, result.Sentiment, 1e-9)
	assert.Len(t, result.Sentences, 3)
	assert.NotEmpty(t, result.RequestID)
	assert.Empty(t, result.TranslationError)
}

func TestHandleAnalyze_Form(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{})

	form := url.Values{"text": {"Hola mundo bonito."}}
	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/x-www-form-urlencoded", form.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bonito")
}

func TestHandleAnalyze_EmptyText(t *testing.T) {
	tr := &testutil.MockTranslator{}
	s := newTestServer(t, tr)

	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/json", `{"text": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "please enter some text")
	assert.Equal(t, 0, tr.CallCount())
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{})

	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/json", `{"text": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_TranslationFailure(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{Err: errors.New("quota exceeded")})

	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/json", `{"text": "Hola."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result processor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.TranslationError, "quota exceeded")
	assert.Equal(t, "Hola.", result.TranslatedText)
}

func TestHandleAnalyze_AnalyzerError(t *testing.T) {
	s := NewServer(DefaultConfig(), failingAnalyzer{}, nil, nil)

	rec := doRequest(s, http.MethodPost, "/api/analyze", "application/json", `{"text": "Hola."}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "scorer exploded")
}

func TestHealthRoutes(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{})

	rec := doRequest(s, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = doRequest(s, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/version", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), internal.Version)
}

func TestReadiness_FailingCheck(t *testing.T) {
	check := HealthCheck{
		Name:  "translation-cache",
		Check: func(ctx context.Context) error { return errors.New("connection refused") },
	}
	s := newTestServer(t, &testutil.MockTranslator{}, check)

	rec := doRequest(s, http.MethodGet, "/health/ready", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "translation-cache")
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, &testutil.MockTranslator{})

	doRequest(s, http.MethodPost, "/api/analyze", "application/json", `{"text": "Hola."}`)
	rec := doRequest(s, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "textlens_analyses_total")
	assert.Contains(t, rec.Body.String(), "textlens_http_requests_total")
}

func TestMetricsRoute_DisabledWithoutRegistry(t *testing.T) {
	s := NewServer(DefaultConfig(), failingAnalyzer{}, nil, nil)

	rec := doRequest(s, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
