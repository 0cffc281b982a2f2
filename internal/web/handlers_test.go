package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/chat"
	"github.com/oliviajools/provoid-website-de-sub001/internal/config"
	"github.com/oliviajools/provoid-website-de-sub001/internal/newsletter"
)

type stubCompleter struct {
	reply    string
	err      error
	received []chat.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []chat.Message) (string, error) {
	s.received = messages
	return s.reply, s.err
}

type stubNewsletter struct {
	status newsletter.Status
	err    error
}

func (s *stubNewsletter) Subscribe(_ context.Context, _ string) (newsletter.Status, error) {
	return s.status, s.err
}

type testEnv struct {
	handler    http.Handler
	store      blog.Store
	completer  *stubCompleter
	newsletter *stubNewsletter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		SiteBaseURL:      "http://localhost:8080",
		SiteTitle:        "provoid",
		AllowedOrigins:   []string{"*"},
		ChatSystemPrompt: "Du bist der Website-Assistent.",
	}
	store := blog.NewFileStore(filepath.Join(t.TempDir(), "posts.json"))
	completer := &stubCompleter{reply: "Hallo!"}
	news := &stubNewsletter{status: newsletter.StatusSubscribed}

	srv := NewServer(cfg, zaptest.NewLogger(t).Sugar(), store, completer, news)
	return &testEnv{
		handler:    srv.Handler(),
		store:      store,
		completer:  completer,
		newsletter: news,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListPostsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/blog", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[]}`, rec.Body.String())
}

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/blog", `{"title":"Erste Studie","excerpt":"kurz","author":"Olivia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	post := body["post"].(map[string]any)
	assert.NotEmpty(t, post["id"])
	assert.Equal(t, "erste-studie", post["slug"])
	assert.Equal(t, time.Now().Format("2006-01-02"), post["date"])
}

func TestCreatePostMissingTitle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/blog", `{"excerpt":"ohne titel"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, env.store.List())
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/api/blog", `{"id":"does-not-exist"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestBlogScenario(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/blog", `{"title":"Erste Studie"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	firstID := decodeBody(t, rec)["post"].(map[string]any)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/blog", `{"title":"Zweite Studie"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/blog", "")
	var list struct {
		Posts []blog.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Posts, 2)
	assert.Equal(t, "Zweite Studie", list.Posts[0].Title)
	assert.Equal(t, "Erste Studie", list.Posts[1].Title)

	rec = env.do(t, http.MethodDelete, "/api/blog", `{"id":"`+firstID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/blog", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "Zweite Studie", list.Posts[0].Title)
}

func TestGetPostRendersMarkdown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/blog", `{"title":"Markdown Test","content":"# Hallo\n\nText."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/blog/markdown-test", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["html"], "<h1")
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/blog/gibt-es-nicht", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestChatPrependsSystemPrompt(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"Hi"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply":"Hallo!"}`, rec.Body.String())

	require.Len(t, env.completer.received, 2)
	assert.Equal(t, "system", env.completer.received[0].Role)
	assert.Equal(t, "Du bist der Website-Assistent.", env.completer.received[0].Content)
	assert.Equal(t, "user", env.completer.received[1].Role)
}

func TestChatEmptyHistoryRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/chat", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsletterSubscribe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/newsletter", `{"email":"neu@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "subscribed", body["status"])
}

func TestNewsletterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.newsletter.status = newsletter.StatusAlreadySubscribed

	rec := env.do(t, http.MethodPost, "/api/newsletter", `{"email":"bekannt@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "already_subscribed", body["status"])
}

func TestNewsletterInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/newsletter", `{"email":"keine-adresse"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeed(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/blog", `{"title":"Feed Eintrag","content":"Inhalt"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/blog/feed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "xml")
	assert.Contains(t, rec.Body.String(), "<rss")
	assert.Contains(t, rec.Body.String(), "Feed Eintrag")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
