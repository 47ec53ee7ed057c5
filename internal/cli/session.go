package cli

import "github.com/amirasaad/banking/pkg/service/auth"

// Session is the state shared by every screen handler.
type Session struct {
	// AccountNumber is zero while logged out.
	AccountNumber uint
	// Recovery is the forgotten-PIN flow in progress, if any.
	Recovery *auth.Recovery
	// Flash is shown once at the top of the next screen.
	Flash string
}

func (s *Session) LoggedIn() bool { return s.AccountNumber != 0 }

// Logout forgets the account and any recovery in progress.
func (s *Session) Logout() {
	*s = Session{}
}
