package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/validation"
)

type handler func(ctx context.Context) (Screen, error)

// Router runs the terminal flow over the services of an App.
type Router struct {
	app     *app.App
	prompt  *Prompter
	logger  *slog.Logger
	session Session
	screen  Screen
	routes  map[Screen]handler
}

func NewRouter(a *app.App, prompt *Prompter) *Router {
	r := &Router{
		app:    a,
		prompt: prompt,
		logger: a.Deps.Logger.With("context", "cli"),
		screen: Menu,
	}
	r.routes = map[Screen]handler{
		Menu:           r.menu,
		Register:       r.register,
		Login:          r.login,
		ForgotPIN:      r.forgotPIN,
		ForgotPINReset: r.forgotPINReset,
		Home:           r.home,
		Profile:        r.profile,
		EditProfile:    r.editProfile,
		ChangePIN:      r.changePIN,
		Balance:        r.balance,
		Transact:       r.transact,
		History:        r.history,
		Export:         r.export,
	}
	return r
}

// Session exposes the current session.
func (r *Router) Session() *Session { return &r.session }

// Screen is the screen that will run next.
func (r *Router) Screen() Screen { return r.screen }

// Run shows screens until Exit is reached, the input ends or ctx is done.
func (r *Router) Run(ctx context.Context) error {
	for r.screen != Exit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Step(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	r.prompt.Title("Goodbye")
	r.prompt.Println("Thanks for using our ATM. See you next time!")
	return nil
}

// Step runs the current screen and moves to the one it returns.
func (r *Router) Step(ctx context.Context) error {
	screen := r.screen
	if screen.authenticated() && !r.session.LoggedIn() {
		screen = Menu
	}
	h, ok := r.routes[screen]
	if !ok {
		r.screen = Exit
		return nil
	}
	r.showFlash()
	next, err := h(ctx)
	if err != nil {
		return err
	}
	r.logger.Debug("Screen done", "screen", screen.String(), "next", next.String())
	r.screen = next
	return nil
}

func (r *Router) showFlash() {
	if r.session.Flash == "" {
		return
	}
	r.prompt.Note("%s", r.session.Flash)
	r.session.Flash = ""
}

// fail reports err to the user and returns next. Errors that are not
// business-rule failures are logged and shown generically.
func (r *Router) fail(err error, next Screen) (Screen, error) {
	r.prompt.Failure("%s", describe(err))
	if errors.Is(err, domain.ErrStorage) || !known(err) {
		r.logger.Error("Operation failed", "error", err)
	}
	return next, nil
}

func describe(err error) string {
	if problems := validation.Problems(err); len(problems) > 0 {
		return "Please fix the following:\n  - " + strings.Join(problems, "\n  - ")
	}
	if known(err) {
		return capitalize(err.Error()) + "."
	}
	return "Something went wrong. Please try again."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *Router) welcome() string {
	return fmt.Sprintf("Logged in as %d", r.session.AccountNumber)
}
