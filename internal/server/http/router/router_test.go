package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/server/http/handlers"
	testhelpers "github.com/takaex/takaex/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.ExchangeFacadeStub{
		SessionResolverStub: testhelpers.SessionResolverStub{
			Session: &model.Session{ID: "sess-1", UserID: 1, Screen: "dashboard", Tab: "dashboard", ExpiresAt: time.Now().Add(time.Hour)},
		},
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context, string) ([]model.Order, int, error) {
				return []model.Order{{ID: "ORD-1001", Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}}, 1, nil
			},
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"phone": "+8801712345678", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/rates", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for rates, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for orders without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for anonymous session state, got %d", resp.Code)
	}
}

var _ handlers.ExchangeFacade = testhelpers.ExchangeFacadeStub{}
