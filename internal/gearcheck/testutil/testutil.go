package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Acearia/gearcheck/internal/gearcheck/handler"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestEnv holds test environment resources
type TestEnv struct {
	Store    *store.MemoryStore
	Repos    *repository.Repositories
	Services *service.Services
	Handlers *handler.Handlers
	Router   *gin.Engine
	T        *testing.T
}

// SetupEnv wires the full stack against an in-memory store.
// No external services are touched; the webhook notifier is left nil.
func SetupEnv(t *testing.T) *TestEnv {
	t.Helper()

	kv := store.NewMemoryStore()
	logger := zap.NewNop()
	repos := repository.NewRepositories(kv, logger)
	hub := sse.NewHub()
	services := service.NewServices(repos, hub, nil, logger)
	handlers := handler.NewHandlers(services, repos, hub)

	return &TestEnv{
		Store:    kv,
		Repos:    repos,
		Services: services,
		Handlers: handlers,
		Router:   SetupRouter(),
		T:        t,
	}
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a handler.Response-like map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
