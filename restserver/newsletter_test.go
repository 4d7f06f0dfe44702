// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/pressbox/go-newsletter/hyper"
	"github.com/pressbox/go-newsletter/memory"
	"github.com/stretchr/testify/assert"
)

// env bundles a router over a fresh store with a mock clock.
type env struct {
	Clock  *clock.Mock
	Router http.Handler
}

func newEnv(t *testing.T) *env {
	clk := clock.NewMock()
	router, err := NewRouter(memory.NewWithClock(clk))
	if err != nil {
		t.Fatal(err)
	}
	return &env{Clock: clk, Router: router}
}

// do runs one request through the router and decodes any JSON body.
func (e *env) do(t *testing.T, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	e.Router.ServeHTTP(resp, req)
	if out != nil && resp.Body.Len() > 0 {
		err := json.Unmarshal(resp.Body.Bytes(), out)
		if err != nil {
			t.Fatalf("decoding %v %v response %q: %v", method, path, resp.Body.String(), err)
		}
	}
	return resp
}

func links(rep map[string]interface{}) map[string]interface{} {
	l, _ := rep["links"].(map[string]interface{})
	return l
}

func TestRootDocument(t *testing.T) {
	e := newEnv(t)
	var root map[string]interface{}
	resp := e.do(t, "GET", "/", "", &root)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Welcome to the Newsletter RESTful API", root["index"])
	assert.Equal(t, "/newsletters", root["newsletters_url"])
	assert.Equal(t, "/newsletters/{id}", root["newsletter_url"])
}

func TestListEmpty(t *testing.T) {
	e := newEnv(t)
	var list []map[string]interface{}
	resp := e.do(t, "GET", "/newsletters", "", &list)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, list)
}

func TestCreateRetrieveRoundTrip(t *testing.T) {
	e := newEnv(t)
	var created map[string]interface{}
	resp := e.do(t, "POST", "/newsletters", `{"title": "A", "body": "B"}`, &created)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "/newsletters/1", resp.Header().Get("Location"))
	assert.Equal(t, "A", created["title"])
	assert.Equal(t, "B", created["body"])
	assert.Nil(t, created["edited_at"])
	assert.Equal(t, "/newsletters/1", links(created)["self"])

	var got map[string]interface{}
	resp = e.do(t, "GET", "/newsletters/1", "", &got)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "A", got["title"])
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "/newsletters/1", links(got)["self"])
	assert.Equal(t, "/newsletters", links(got)["collection"])
}

func TestListCollectionView(t *testing.T) {
	e := newEnv(t)
	e.do(t, "POST", "/newsletters", `{"title": "first", "body": "one"}`, nil)
	e.do(t, "POST", "/newsletters", `{"title": "second", "body": "two"}`, nil)

	var list []map[string]interface{}
	resp := e.do(t, "GET", "/newsletters", "", &list)
	assert.Equal(t, http.StatusOK, resp.Code)
	if !assert.Len(t, list, 2) {
		return
	}
	for i, rep := range list {
		// Strictly the collection view: no body, no id, no
		// edited_at
		assert.NotContains(t, rep, "body")
		assert.NotContains(t, rep, "id")
		assert.NotContains(t, rep, "edited_at")
		assert.Contains(t, rep, "title")
		assert.Contains(t, rep, "published_at")
		assert.Equal(t, "/newsletters", links(rep)["collection"], i)
	}
	assert.Equal(t, "first", list[0]["title"])
	assert.Equal(t, "second", list[1]["title"])
	assert.Equal(t, "/newsletters/1", links(list[0])["self"])
	assert.Equal(t, "/newsletters/2", links(list[1])["self"])
}

func TestPatch(t *testing.T) {
	e := newEnv(t)
	var created map[string]interface{}
	e.do(t, "POST", "/newsletters", `{"title": "Old", "body": "B"}`, &created)

	e.Clock.Add(time.Hour)
	var patched map[string]interface{}
	resp := e.do(t, "PATCH", "/newsletters/1", `{"title": "New"}`, &patched)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "New", patched["title"])
	assert.Equal(t, "B", patched["body"])
	assert.Equal(t, created["published_at"], patched["published_at"])
	assert.NotNil(t, patched["edited_at"])

	var got map[string]interface{}
	resp = e.do(t, "GET", "/newsletters/1", "", &got)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "New", got["title"])
	assert.Equal(t, created["published_at"], got["published_at"])
	assert.NotNil(t, got["edited_at"])
}

func TestPatchUnknownField(t *testing.T) {
	e := newEnv(t)
	e.do(t, "POST", "/newsletters", `{"title": "T"}`, nil)

	var errResp map[string]interface{}
	resp := e.do(t, "PATCH", "/newsletters/1", `{"id": "99"}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "ErrBadField", errResp["error"])
	assert.Equal(t, "id", errResp["value"])
}

func TestDelete(t *testing.T) {
	e := newEnv(t)
	e.do(t, "POST", "/newsletters", `{"title": "T"}`, nil)

	var msg map[string]interface{}
	resp := e.do(t, "DELETE", "/newsletters/1", "", &msg)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "record successfully deleted", msg["message"])

	var errResp map[string]interface{}
	resp = e.do(t, "GET", "/newsletters/1", "", &errResp)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "ErrNoSuchNewsletter", errResp["error"])
}

func TestMissingRecordIs404(t *testing.T) {
	e := newEnv(t)
	for _, method := range []string{"GET", "PATCH", "DELETE"} {
		body := ""
		if method == "PATCH" {
			body = `{"title": "x"}`
		}
		resp := e.do(t, method, "/newsletters/12", body, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code, method)
	}
}

func TestNonNumericID(t *testing.T) {
	e := newEnv(t)
	resp := e.do(t, "GET", "/newsletters/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSchemaRoutesValidated(t *testing.T) {
	// Building the API over a router with no routes must fail
	// immediately, not at request time.
	api := &restAPI{Storage: memory.New(), Router: mux.NewRouter()}
	err := api.buildSchemas()
	assert.IsType(t, hyper.ErrUnknownRoute{}, err)
}

func TestSubrouterLinksCarryPrefix(t *testing.T) {
	// Mounting the API under a path prefix must show up in every
	// generated link.
	r := mux.NewRouter()
	s := r.PathPrefix("/api").Subrouter()
	err := PopulateRouter(s, memory.New())
	if !assert.NoError(t, err) {
		return
	}

	req := httptest.NewRequest("POST", "/api/newsletters", strings.NewReader(`{"title": "T"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]interface{}
	err = json.Unmarshal(resp.Body.Bytes(), &created)
	if assert.NoError(t, err) {
		assert.Equal(t, "/api/newsletters/1", links(created)["self"])
		assert.Equal(t, "/api/newsletters", links(created)["collection"])
	}
}
