package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	pkgAuth "github.com/takaex/takaex/internal/pkg/auth"
	testhelpers "github.com/takaex/takaex/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedRequest(t *testing.T, resolver SessionResolver, required bool, prepare func(*http.Request)) (*httptest.ResponseRecorder, *model.Session, int64) {
	t.Helper()
	var (
		session *model.Session
		userID  int64
	)
	router := gin.New()
	if required {
		router.Use(AuthRequired(resolver))
	} else {
		router.Use(OptionalAuth(resolver))
	}
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(SessionContextKey); ok {
			session = v.(*model.Session)
		}
		if v, ok := c.Get(UserIDContextKey); ok {
			userID = v.(int64)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prepare != nil {
		prepare(req)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp, session, userID
}

func TestAuthRequired(t *testing.T) {
	live := &model.Session{ID: "sess-1", UserID: 42, Screen: "dashboard", Tab: "dashboard", ExpiresAt: time.Now().Add(time.Hour)}

	resp, _, _ := authedRequest(t, testhelpers.SessionResolverStub{Session: live}, true, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	withToken := func(req *http.Request) { req.Header.Set("Authorization", "Bearer token") }

	resp, _, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: pkgAuth.ErrInvalidToken}, true, withToken)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	resp, _, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: domainErrors.ErrSessionExpired}, true, withToken)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired session, got %d", resp.Code)
	}

	resp, _, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: domainErrors.ErrNotFound}, true, withToken)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %d", resp.Code)
	}

	resp, _, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: errors.New("storage down")}, true, withToken)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for storage failure, got %d", resp.Code)
	}

	resp, session, userID := authedRequest(t, testhelpers.SessionResolverStub{Session: live}, true, withToken)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if session == nil || session.ID != "sess-1" {
		t.Fatalf("expected session in context, got %+v", session)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestOptionalAuth(t *testing.T) {
	live := &model.Session{ID: "sess-1", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
	withToken := func(req *http.Request) { req.Header.Set("Authorization", "Bearer token") }

	resp, session, _ := authedRequest(t, testhelpers.SessionResolverStub{Session: live}, false, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous caller, got %d", resp.Code)
	}
	if session != nil {
		t.Fatalf("expected no session in context, got %+v", session)
	}

	resp, session, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: domainErrors.ErrSessionExpired}, false, withToken)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for expired token, got %d", resp.Code)
	}
	if session != nil {
		t.Fatalf("expected anonymous continuation, got %+v", session)
	}

	resp, _, _ = authedRequest(t, testhelpers.SessionResolverStub{Err: errors.New("storage down")}, false, withToken)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for storage failure, got %d", resp.Code)
	}

	resp, session, userID := authedRequest(t, testhelpers.SessionResolverStub{Session: live}, false, withToken)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if session == nil || userID != 42 {
		t.Fatalf("expected session and user id in context, got %+v %d", session, userID)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := ExtractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := ExtractToken(c); token != "abc" {
		t.Fatalf("expected abc, got %q", token)
	}

	c.Request.Header.Set("Authorization", "bearer  spaced ")
	if token := ExtractToken(c); token != "spaced" {
		t.Fatalf("expected case-insensitive scheme and trimmed token, got %q", token)
	}

	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: "takaex_token", Value: "from-cookie"})
	if token := ExtractToken(c); token != "from-cookie" {
		t.Fatalf("expected cookie fallback, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer header-wins")
	if token := ExtractToken(c); token != "header-wins" {
		t.Fatalf("expected header precedence over cookie, got %q", token)
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Name != "takaex_token" || cookies[0].Value != "token" {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
}

func TestClearAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	ClearAuthCookie(c)
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Name != "takaex_token" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/rates", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/rates", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON log line, got %q", buf.String())
	}
	if entry["method"] != http.MethodGet || entry["path"] != "/rates" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status in log entry: %v", entry["status"])
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	var received string
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		received = string(body)
		c.Status(http.StatusOK)
	})

	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write([]byte(`{"phone":"+8801712345678"}`)); err != nil {
		t.Fatalf("failed to compress payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finish payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if received != `{"phone":"+8801712345678"}` {
		t.Fatalf("unexpected decompressed body %q", received)
	}
}

func TestDecompressRequestBadPayload(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken payload, got %d", resp.Code)
	}
}

func TestDecompressRequestPassThrough(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	var received string
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		received = string(body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if received != "plain" {
		t.Fatalf("unexpected body %q", received)
	}
}
