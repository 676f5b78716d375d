// Package nav models the client navigation state machine: a discrete current
// screen, an active bottom-navigation tab, an authentication gate, and an
// explicit predecessor table replacing per-view hardcoded back buttons.
package nav

// Screen identifies a single view of the client.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenOTP            Screen = "otp"
	ScreenDashboard      Screen = "dashboard"
	ScreenForm           Screen = "form"
	ScreenConfirmation   Screen = "confirmation"
	ScreenHistory        Screen = "history"
	ScreenDetails        Screen = "details"
	ScreenNotifications  Screen = "notifications"
	ScreenProfile        Screen = "profile"
	ScreenEditProfile    Screen = "edit-profile"
	ScreenChangePassword Screen = "change-password"
	ScreenSupport        Screen = "support"
	ScreenSettings       Screen = "settings"
	ScreenLogout         Screen = "logout"
)

// Tab identifies one of the five primary bottom-navigation destinations.
type Tab string

const (
	TabDashboard     Tab = "dashboard"
	TabHistory       Tab = "history"
	TabForm          Tab = "form"
	TabNotifications Tab = "notifications"
	TabProfile       Tab = "profile"
)

var screens = map[Screen]struct{}{
	ScreenLogin: {}, ScreenSignup: {}, ScreenOTP: {},
	ScreenDashboard: {}, ScreenForm: {}, ScreenConfirmation: {},
	ScreenHistory: {}, ScreenDetails: {}, ScreenNotifications: {},
	ScreenProfile: {}, ScreenEditProfile: {}, ScreenChangePassword: {},
	ScreenSupport: {}, ScreenSettings: {}, ScreenLogout: {},
}

// public lists the screens reachable without a session.
var public = map[Screen]struct{}{
	ScreenLogin: {}, ScreenSignup: {}, ScreenOTP: {},
}

// predecessors is the route table for back navigation. Keeping it in one
// place removes the fragility of each view choosing its own "back" target.
var predecessors = map[Screen]Screen{
	ScreenSignup:         ScreenLogin,
	ScreenOTP:            ScreenSignup,
	ScreenForm:           ScreenDashboard,
	ScreenConfirmation:   ScreenDashboard,
	ScreenHistory:        ScreenDashboard,
	ScreenDetails:        ScreenHistory,
	ScreenNotifications:  ScreenDashboard,
	ScreenProfile:        ScreenDashboard,
	ScreenEditProfile:    ScreenProfile,
	ScreenChangePassword: ScreenProfile,
	ScreenSupport:        ScreenProfile,
	ScreenSettings:       ScreenProfile,
	ScreenLogout:         ScreenProfile,
}

// tabs maps each screen to the bottom-navigation tab it highlights.
// Screens outside the five primary destinations keep the previous tab.
var tabs = map[Screen]Tab{
	ScreenDashboard:     TabDashboard,
	ScreenHistory:       TabHistory,
	ScreenForm:          TabForm,
	ScreenNotifications: TabNotifications,
	ScreenProfile:       TabProfile,
}

// Parse validates a raw screen identifier.
func Parse(s string) (Screen, bool) {
	_, ok := screens[Screen(s)]
	return Screen(s), ok
}

// Public reports whether the screen is reachable without authentication.
func Public(s Screen) bool {
	_, ok := public[s]
	return ok
}

// Resolve applies the authentication gate: while unauthenticated only the
// public screens are reachable, every other target is coerced to login.
func Resolve(target Screen, authenticated bool) Screen {
	if !authenticated && !Public(target) {
		return ScreenLogin
	}
	return target
}

// Back returns the predecessor for the given screen. Screens without an
// entry (login, dashboard) return the dashboard as the terminal ancestor,
// login for the public ones.
func Back(s Screen) Screen {
	if prev, ok := predecessors[s]; ok {
		return prev
	}
	if Public(s) {
		return ScreenLogin
	}
	return ScreenDashboard
}

// TabFor returns the tab highlighted for the screen and whether the screen
// is one of the five primary destinations.
func TabFor(s Screen) (Tab, bool) {
	t, ok := tabs[s]
	return t, ok
}
