package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpc/ocean/internal/cache"
	"github.com/tpc/ocean/internal/config"
	"github.com/tpc/ocean/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		HTTP:        config.HTTPConfig{PublicURL: ""},
		Cache:       config.CacheConfig{Backend: config.CacheMemory, Prefix: "ocean"},
		Pagination:  config.PaginationConfig{DefaultSize: 5, MaxSize: 100},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(testConfig(), testutil.NewDB(t), cache.NewMemory(), zerolog.Nop())
}

func call(t *testing.T, r http.Handler, method, target, body string) (int, http.Header, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, rec.Header(), out
}

func TestCompanyContractScenario(t *testing.T) {
	r := newTestRouter(t)

	code, header, company := call(t, r, http.MethodPost, "/empresas", `{"nome":"C1","cnpj":"12.345.678/0001-90"}`)
	require.Equal(t, http.StatusCreated, code)
	companyID := uint64(company["id"].(float64))
	assert.Equal(t, fmt.Sprintf("/empresas/%d", companyID), header.Get("Location"))

	contractBody := fmt.Sprintf(`{"empresa_id":%d,"tipo_contrato":"patrocinio","data_inicio":"2026-01-01","data_fim":"2026-12-31","valor":1500.5,"status":"ativo"}`, companyID)
	code, header, contract := call(t, r, http.MethodPost, "/contratos", contractBody)
	require.Equal(t, http.StatusCreated, code)
	contractPath := header.Get("Location")
	require.NotEmpty(t, contractPath)

	updated := strings.Replace(contractBody, `"status":"ativo"`, `"status":"encerrado"`, 1)
	code, _, _ = call(t, r, http.MethodPut, contractPath, updated)
	require.Equal(t, http.StatusOK, code)

	code, _, got := call(t, r, http.MethodGet, contractPath, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "encerrado", got["status"])
	assert.Equal(t, "2026-01-01", got["data_inicio"])
	assert.Equal(t, 1500.5, got["valor"])
	assert.Equal(t, contract["id"], got["id"])

	code, _, _ = call(t, r, http.MethodDelete, contractPath, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _, _ = call(t, r, http.MethodGet, contractPath, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReferencesAreChecked(t *testing.T) {
	r := newTestRouter(t)

	code, _, body := call(t, r, http.MethodPost, "/perfil-empresa", `{"usuario_id":1,"empresa_id":1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "usuario_id")

	code, _, _ = call(t, r, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"ana@ocean.test","senha":"s3nha"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _, _ = call(t, r, http.MethodPost, "/empresas", `{"nome":"C1","cnpj":"1"}`)
	require.Equal(t, http.StatusCreated, code)

	code, _, _ = call(t, r, http.MethodPost, "/perfil-empresa", `{"usuario_id":1,"empresa_id":1}`)
	assert.Equal(t, http.StatusCreated, code)

	code, _, _ = call(t, r, http.MethodDelete, "/empresas/1", "")
	assert.Equal(t, http.StatusNoContent, code, "deletes never cascade or block")
	code, _, _ = call(t, r, http.MethodGet, "/perfil-empresa/1", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestUserPasswordIsNeverReturned(t *testing.T) {
	r := newTestRouter(t)

	code, _, body := call(t, r, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"ana@ocean.test","senha":"s3nha","tipo":"admin"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.NotContains(t, body, "senha")

	_, _, page := call(t, r, http.MethodGet, "/usuarios", "")
	items := page["_embedded"].(map[string]any)["usuarios"].([]any)
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "senha")
}

func TestEveryKindIsMounted(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{
		"/empresas", "/instituicoes", "/contratos", "/servicos", "/transacoes",
		"/exibicoes", "/usuarios", "/perfil-empresa", "/perfil-instituicao",
	} {
		code, _, body := call(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, code, path)
		assert.Contains(t, body, "page", path)
	}

	code, _, doc := call(t, r, http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestNewCacheMemory(t *testing.T) {
	c, closeFn, err := NewCache(context.Background(), config.CacheConfig{Backend: config.CacheMemory}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, c)
	assert.NoError(t, closeFn())
}

func TestNewCacheRedisUnreachable(t *testing.T) {
	_, _, err := NewCache(context.Background(), config.CacheConfig{Backend: config.CacheRedis, RedisAddr: "127.0.0.1:1"}, zerolog.Nop())
	assert.Error(t, err)
}
