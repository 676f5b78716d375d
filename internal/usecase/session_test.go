package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/nav"
	testhelpers "github.com/takaex/takaex/internal/test"
	"github.com/takaex/takaex/internal/usecase"
)

func seedSession(t *testing.T, sessions *testhelpers.SessionRepositoryStub, screen, tab string) *model.Session {
	t.Helper()
	session := &model.Session{ID: "sess-1", UserID: 1, Screen: screen, Tab: tab, ExpiresAt: time.Now().Add(time.Hour)}
	if err := sessions.Create(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session
}

func TestNavStateAnonymous(t *testing.T) {
	uc := usecase.NewNavUseCase(testhelpers.NewSessionRepositoryStub())
	state := uc.State(nil)
	if state.Screen != nav.ScreenLogin {
		t.Fatalf("anonymous state must sit on login, got %s", state.Screen)
	}
}

func TestNavNavigatePersists(t *testing.T) {
	sessions := testhelpers.NewSessionRepositoryStub()
	session := seedSession(t, sessions, "dashboard", "dashboard")
	uc := usecase.NewNavUseCase(sessions)
	ctx := context.Background()

	state, err := uc.Navigate(ctx, session, "history")
	if err != nil {
		t.Fatalf("navigate returned error: %v", err)
	}
	if state.Screen != nav.ScreenHistory || state.Tab != nav.TabHistory {
		t.Fatalf("unexpected state: %+v", state)
	}

	stored, _ := sessions.Get(ctx, "sess-1")
	if stored.Screen != "history" || stored.Tab != "history" {
		t.Fatalf("position not persisted: %+v", stored)
	}
}

func TestNavNavigateKeepsTabOffPrimaryScreens(t *testing.T) {
	sessions := testhelpers.NewSessionRepositoryStub()
	session := seedSession(t, sessions, "profile", "profile")
	uc := usecase.NewNavUseCase(sessions)

	state, err := uc.Navigate(context.Background(), session, "settings")
	if err != nil {
		t.Fatalf("navigate returned error: %v", err)
	}
	if state.Screen != nav.ScreenSettings {
		t.Fatalf("unexpected screen: %s", state.Screen)
	}
	if state.Tab != nav.TabProfile {
		t.Fatalf("tab must survive navigation to secondary screens, got %s", state.Tab)
	}
}

func TestNavNavigateGateCoercesAnonymous(t *testing.T) {
	uc := usecase.NewNavUseCase(testhelpers.NewSessionRepositoryStub())

	state, err := uc.Navigate(context.Background(), nil, "dashboard")
	if err != nil {
		t.Fatalf("navigate returned error: %v", err)
	}
	if state.Screen != nav.ScreenLogin {
		t.Fatalf("unauthenticated target must coerce to login, got %s", state.Screen)
	}

	state, err = uc.Navigate(context.Background(), nil, "signup")
	if err != nil {
		t.Fatalf("navigate returned error: %v", err)
	}
	if state.Screen != nav.ScreenSignup {
		t.Fatalf("public screens stay reachable, got %s", state.Screen)
	}
}

func TestNavNavigateUnknownScreen(t *testing.T) {
	uc := usecase.NewNavUseCase(testhelpers.NewSessionRepositoryStub())
	if _, err := uc.Navigate(context.Background(), nil, "wallet"); !errors.Is(err, domainErrors.ErrInvalidScreen) {
		t.Fatalf("expected invalid screen, got %v", err)
	}
}

func TestNavBack(t *testing.T) {
	sessions := testhelpers.NewSessionRepositoryStub()
	session := seedSession(t, sessions, "details", "history")
	uc := usecase.NewNavUseCase(sessions)

	state, err := uc.Back(context.Background(), session)
	if err != nil {
		t.Fatalf("back returned error: %v", err)
	}
	if state.Screen != nav.ScreenHistory || state.Tab != nav.TabHistory {
		t.Fatalf("unexpected state after back: %+v", state)
	}

	// Dashboard is the terminal ancestor.
	state, err = uc.Back(context.Background(), session)
	if err != nil {
		t.Fatalf("back returned error: %v", err)
	}
	if state.Screen != nav.ScreenDashboard {
		t.Fatalf("expected dashboard, got %s", state.Screen)
	}
	state, err = uc.Back(context.Background(), session)
	if err != nil {
		t.Fatalf("back returned error: %v", err)
	}
	if state.Screen != nav.ScreenDashboard {
		t.Fatalf("dashboard must be terminal, got %s", state.Screen)
	}
}

func TestNavBackAnonymous(t *testing.T) {
	uc := usecase.NewNavUseCase(testhelpers.NewSessionRepositoryStub())
	state, err := uc.Back(context.Background(), nil)
	if err != nil {
		t.Fatalf("back returned error: %v", err)
	}
	if state.Screen != nav.ScreenLogin {
		t.Fatalf("anonymous back must stay on login, got %s", state.Screen)
	}
}
