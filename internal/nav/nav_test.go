package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUnauthenticatedCoercesToLogin(t *testing.T) {
	for s := range screens {
		resolved := Resolve(s, false)
		if Public(s) {
			assert.Equal(t, s, resolved, "public screen %s must stay reachable", s)
		} else {
			assert.Equal(t, ScreenLogin, resolved, "screen %s must be coerced to login", s)
		}
	}
}

func TestResolveAuthenticatedPassesThrough(t *testing.T) {
	for s := range screens {
		assert.Equal(t, s, Resolve(s, true))
	}
}

func TestParse(t *testing.T) {
	s, ok := Parse("edit-profile")
	assert.True(t, ok)
	assert.Equal(t, ScreenEditProfile, s)

	_, ok = Parse("admin")
	assert.False(t, ok)
}

func TestBackRouteTable(t *testing.T) {
	cases := map[Screen]Screen{
		ScreenSignup:         ScreenLogin,
		ScreenOTP:            ScreenSignup,
		ScreenDetails:        ScreenHistory,
		ScreenEditProfile:    ScreenProfile,
		ScreenChangePassword: ScreenProfile,
		ScreenSettings:       ScreenProfile,
		ScreenConfirmation:   ScreenDashboard,
		ScreenDashboard:      ScreenDashboard,
		ScreenLogin:          ScreenLogin,
	}
	for from, want := range cases {
		assert.Equal(t, want, Back(from), "back from %s", from)
	}
}

func TestTabFor(t *testing.T) {
	tab, ok := TabFor(ScreenHistory)
	assert.True(t, ok)
	assert.Equal(t, TabHistory, tab)

	_, ok = TabFor(ScreenDetails)
	assert.False(t, ok, "detail screens do not own a tab")
}
