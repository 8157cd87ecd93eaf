package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/simplepass/handler"
)

// ContainerID is the id of the element wrapping the page content.
// DataStar responses patch this element.
const ContainerID = "simplepass"

// LoginPage is the data rendered by Login.
type LoginPage struct {
	Labels Labels
	Theme  Theme

	// Action is the form target, including the redirect query.
	Action string
	// LogoutAction is the logout form target.
	LogoutAction string
	// EmailPassword renders email and password inputs instead of a pass key.
	EmailPassword bool

	Error         string
	Email         string
	LoggedOut     bool
	Authenticated bool
}

// ErrorPage returns a handler.ErrorHandlerConfig page renderer using theme.
func ErrorPage(theme Theme, labels Labels) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		return errorPage(theme, labels, p)
	}
}
