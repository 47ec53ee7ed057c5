// Package cli is the interactive terminal caller of the banking services.
// A Router moves between screens; each screen handler does its work and
// returns the screen to show next.
package cli

// Screen identifies one step of the terminal flow.
type Screen int

const (
	Menu Screen = iota
	Register
	Login
	ForgotPIN
	ForgotPINReset
	Home
	Profile
	EditProfile
	ChangePIN
	Balance
	Transact
	History
	Export
	Exit
)

var screenNames = [...]string{
	Menu:           "menu",
	Register:       "register",
	Login:          "login",
	ForgotPIN:      "forgot-pin",
	ForgotPINReset: "forgot-pin-reset",
	Home:           "home",
	Profile:        "profile",
	EditProfile:    "edit-profile",
	ChangePIN:      "change-pin",
	Balance:        "balance",
	Transact:       "transact",
	History:        "history",
	Export:         "export",
	Exit:           "exit",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// authenticated reports whether s requires a logged-in session.
func (s Screen) authenticated() bool {
	switch s {
	case Home, Profile, EditProfile, ChangePIN, Balance, Transact, History:
		return true
	}
	return false
}
