package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"todolist/config"
	"todolist/infras/otel/mocks"
	"todolist/internal/handlers/home"
	"todolist/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Name = "todolist"

	tracer := mocks.NewOtel()
	handler := home.New(cfg, view.New(tracer), tracer)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_Home(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `hx-get="/tasks/personal"`)
	assert.Contains(t, rec.Body.String(), `hx-get="/tasks/work"`)
	assert.Contains(t, rec.Body.String(), `hx-get="/tasks/shopping"`)
}

func TestHandler_Static(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
