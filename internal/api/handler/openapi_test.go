package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specpkg "github.com/whitemassif/website/api"
	"github.com/whitemassif/website/internal/api/handler"
)

const minimalSpec = `openapi: "3.1.0"
info:
  title: Test API
  version: "1.0.0"
paths: {}
`

func TestOpenAPIHandler_JSON(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte(minimalSpec))
	w := httptest.NewRecorder()

	h.JSON(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "3.1.0", result["openapi"])
	assert.Equal(t, "Test API", result["info"].(map[string]any)["title"])
}

func TestOpenAPIHandler_YAML(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte(minimalSpec))
	w := httptest.NewRecorder()

	h.YAML(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, minimalSpec, w.Body.String())
}

func TestOpenAPIHandler_InvalidYAML(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte(`{{{not yaml at all}}}`))
	w := httptest.NewRecorder()

	h.JSON(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errObj := parseEnvelope(t, w)["error"].(map[string]any)
	assert.Equal(t, "INTERNAL_ERROR", errObj["code"])
}

func TestOpenAPIHandler_ConvertsOnce(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte(minimalSpec))
	w1 := httptest.NewRecorder()
	w2 := httptest.NewRecorder()

	h.JSON(w1, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	h.JSON(w2, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestOpenAPIHandler_EmbeddedSpec(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, specpkg.OpenAPISpec)

	h := handler.NewOpenAPIHandler(specpkg.OpenAPISpec)
	w := httptest.NewRecorder()

	h.JSON(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	paths := result["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/submit-form")
	assert.Contains(t, paths, "/sitemap.xml")
}
