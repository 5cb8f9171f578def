package endpoint

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ariebrainware/medi-help/ai"
	"github.com/ariebrainware/medi-help/config"
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/repository"
	"github.com/ariebrainware/medi-help/store"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type requestSpec struct {
	method      string
	requestPath string
	body        interface{}
	token       string
}

func performRequest(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader *strings.Reader
	setJSONHeader := false
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(spec.body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(spec.method, spec.requestPath, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	if spec.token != "" {
		req.Header.Set("Authorization", "Bearer "+spec.token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

// scriptedGenerator answers every AI request through fn.
type scriptedGenerator struct {
	mu sync.Mutex
	fn func(req ai.Request) (string, error)
}

func (g *scriptedGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	g.mu.Lock()
	fn := g.fn
	g.mu.Unlock()
	if fn == nil {
		return "", nil
	}
	return fn(req)
}

func (g *scriptedGenerator) respond(fn func(req ai.Request) (string, error)) {
	g.mu.Lock()
	g.fn = fn
	g.mu.Unlock()
}

type testServer struct {
	router *gin.Engine
	repo   *repository.Repository
	gen    *scriptedGenerator
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	util.SetJWTSecret("test-secret-123")
	config.ResetRedisClientForTest()
	t.Cleanup(util.SetSecurityLogOutput(io.Discard))

	repo, err := repository.New(context.Background(), store.NewMemory())
	require.NoError(t, err)
	gen := &scriptedGenerator{}
	adapter := ai.NewAdapter(gen, ai.WithLogger(zerolog.Nop()))
	ctrl := controller.New(repo, adapter)

	cfg := &config.Config{AppName: "Medi Help", LoginRateLimit: 100}
	return &testServer{router: SetupRouter(cfg, ctrl), repo: repo, gen: gen}
}

func (s *testServer) do(t *testing.T, spec requestSpec) (int, map[string]interface{}) {
	t.Helper()
	w, resp, err := performRequest(s.router, spec)
	require.NoError(t, err, "body: %s", w.Body.String())
	return w.Code, resp
}

// register creates a patient and returns the session token.
func (s *testServer) register(t *testing.T, id, name, password string) string {
	t.Helper()
	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/register", body: map[string]string{"id": id, "name": name, "password": password}})
	require.Equal(t, 200, code, resp)
	return dataMap(t, resp)["token"].(string)
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/login", body: map[string]string{"id": "2", "password": "2"}})
	require.Equal(t, 200, code, resp)
	return dataMap(t, resp)["token"].(string)
}

func dataMap(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", resp["data"])
	return data
}

func dataList(t *testing.T, v interface{}) []interface{} {
	t.Helper()
	list, ok := v.([]interface{})
	require.True(t, ok, "not a list: %v", v)
	return list
}
