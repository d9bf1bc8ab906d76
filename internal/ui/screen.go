package ui

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenConsent
	ScreenDashboard
	ScreenResult
	ScreenHistory
	ScreenJournal
	ScreenLibrary
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenConsent:
		return "consent"
	case ScreenDashboard:
		return "dashboard"
	case ScreenResult:
		return "result"
	case ScreenHistory:
		return "history"
	case ScreenJournal:
		return "journal"
	case ScreenLibrary:
		return "library"
	case ScreenSettings:
		return "settings"
	}
	return "unknown"
}

// navScreens are the tabs of the bottom bar, in order.
var navScreens = []Screen{ScreenDashboard, ScreenHistory, ScreenJournal, ScreenLibrary, ScreenSettings}

var navLabels = map[Screen]string{
	ScreenDashboard: "Home",
	ScreenHistory:   "History",
	ScreenJournal:   "Journal",
	ScreenLibrary:   "Library",
	ScreenSettings:  "Settings",
}

// step moves dir tabs along the nav bar. Screens outside the bar (the
// result page) count as Home.
func (s Screen) step(dir int) Screen {
	idx := 0
	for i, ns := range navScreens {
		if ns == s {
			idx = i
			break
		}
	}
	n := len(navScreens)
	return navScreens[((idx+dir)%n+n)%n]
}

func (s Screen) hasNav() bool {
	return s != ScreenWelcome && s != ScreenConsent
}

func (s Screen) takesText() bool {
	return s == ScreenDashboard || s == ScreenJournal
}
