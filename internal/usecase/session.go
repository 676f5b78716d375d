package usecase

import (
	"context"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
	"github.com/takaex/takaex/internal/nav"
)

// NavState is the client position: current screen plus highlighted tab.
type NavState struct {
	Screen nav.Screen
	Tab    nav.Tab
}

// NavUseCase drives the navigation state machine and persists the position
// for authenticated sessions. Anonymous callers get the same gate semantics
// without anything being stored.
type NavUseCase struct {
	sessions repository.SessionRepository
}

// NewNavUseCase constructs NavUseCase.
func NewNavUseCase(sessions repository.SessionRepository) *NavUseCase {
	return &NavUseCase{sessions: sessions}
}

// State reports the current position. A nil session sits on the login screen.
func (u *NavUseCase) State(session *model.Session) NavState {
	if session == nil {
		return NavState{Screen: nav.ScreenLogin, Tab: nav.TabDashboard}
	}
	state := NavState{Screen: nav.Screen(session.Screen), Tab: nav.Tab(session.Tab)}
	if state.Screen == "" {
		state.Screen = nav.ScreenDashboard
	}
	if state.Tab == "" {
		state.Tab = nav.TabDashboard
	}
	return state
}

// Navigate moves to the target screen, applying the authentication gate.
func (u *NavUseCase) Navigate(ctx context.Context, session *model.Session, target string) (NavState, error) {
	screen, ok := nav.Parse(target)
	if !ok {
		return NavState{}, domainErrors.ErrInvalidScreen
	}
	return u.moveTo(ctx, session, screen)
}

// Back moves to the predecessor of the current screen.
func (u *NavUseCase) Back(ctx context.Context, session *model.Session) (NavState, error) {
	return u.moveTo(ctx, session, nav.Back(u.State(session).Screen))
}

func (u *NavUseCase) moveTo(ctx context.Context, session *model.Session, screen nav.Screen) (NavState, error) {
	resolved := nav.Resolve(screen, session != nil)

	state := u.State(session)
	state.Screen = resolved
	if tab, ok := nav.TabFor(resolved); ok {
		state.Tab = tab
	}

	if session != nil {
		session.Screen = string(state.Screen)
		session.Tab = string(state.Tab)
		if err := u.sessions.Update(ctx, session); err != nil {
			return NavState{}, err
		}
	}
	return state, nil
}
