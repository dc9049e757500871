package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellchecker/internal/corrector"
	"spellchecker/internal/transport/middleware"
)

type fakeService struct {
	added    []string
	removed  []string
	storeErr error
	batchErr error
}

func (f *fakeService) Correct(text string) corrector.CorrectionResult {
	return corrector.CorrectionResult{
		Original:  text,
		Corrected: strings.ReplaceAll(text, "kitab", "kitap"),
		Edits: []corrector.Edit{
			{Position: 0, Original: "kitab", Corrected: "kitap", Operator: corrector.SpellCheck},
		},
	}
}

func (f *fakeService) CorrectBatch(_ context.Context, texts []string) ([]corrector.CorrectionResult, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make([]corrector.CorrectionResult, len(texts))
	for i, t := range texts {
		out[i] = corrector.CorrectionResult{Original: t, Corrected: t}
	}
	return out, nil
}

func (f *fakeService) AddCustomWord(_ context.Context, word string) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.added = append(f.added, word)
	return nil
}

func (f *fakeService) RemoveCustomWord(_ context.Context, word string) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.removed = append(f.removed, word)
	return nil
}

func serve(t *testing.T, svc Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, 2, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestCorrect(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodPost, "/api/v1/correct", `{"text":"kitab okudum"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	m := decode(t, rec)
	assert.Equal(t, "kitab okudum", m["original"])
	assert.Equal(t, "kitap okudum", m["corrected"])
	edits := m["edits"].([]any)
	require.Len(t, edits, 1)
	assert.Equal(t, "SPELL_CHECK", edits[0].(map[string]any)["operator"])
}

func TestCorrect_BadRequest(t *testing.T) {
	for _, body := range []string{``, `{`, `{"text":"   "}`} {
		rec := serve(t, &fakeService{}, http.MethodPost, "/api/v1/correct", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "invalid request", decode(t, rec)["error"])
	}
}

func TestCorrect_WrongMethod(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodGet, "/api/v1/correct", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCorrectBatch(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodPost, "/api/v1/correct/batch", `{"texts":["bir","iki"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode(t, rec)["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, "iki", results[1].(map[string]any)["original"])
}

func TestCorrectBatch_Limits(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodPost, "/api/v1/correct/batch", `{"texts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, &fakeService{}, http.MethodPost, "/api/v1/correct/batch", `{"texts":["a","b","c"]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCorrectBatch_Cancelled(t *testing.T) {
	rec := serve(t, &fakeService{batchErr: context.Canceled}, http.MethodPost, "/api/v1/correct/batch", `{"texts":["a"]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCustomWord(t *testing.T) {
	svc := &fakeService{}

	rec := serve(t, svc, http.MethodPost, "/api/v1/custom-word", `{"word":"Kubernetes"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Kubernetes"}, svc.added)

	rec = serve(t, svc, http.MethodDelete, "/api/v1/custom-word/Kubernetes", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Kubernetes"}, svc.removed)
}

func TestCustomWord_Errors(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodPost, "/api/v1/custom-word", `{"word":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc := &fakeService{storeErr: errors.New("customdict: add: connection refused")}
	rec = serve(t, svc, http.MethodPost, "/api/v1/custom-word", `{"word":"kubectl"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "customdict: add: connection refused", decode(t, rec)["error"])

	rec = serve(t, svc, http.MethodDelete, "/api/v1/custom-word/kubectl", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := serve(t, &fakeService{}, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
