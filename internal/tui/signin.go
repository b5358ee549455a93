package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type signInPhase int

const (
	signInPhaseEmail signInPhase = iota
	signInPhaseCode
)

type signInModel struct {
	phase      signInPhase
	email      textinput.Model
	code       textinput.Model
	submitting bool
	sentTo     string
	expiryMin  int
}

func newSignInModel() signInModel {
	email := textinput.New()
	email.Width = 40
	email.Placeholder = "you@university.edu"
	email.Focus()

	code := textinput.New()
	code.Width = 10
	code.CharLimit = 6
	code.Placeholder = "123456"

	return signInModel{email: email, code: code}
}

func (m signInModel) View() string {
	out := titleStyle.Render("Sign in") + "\n\n"

	switch m.phase {
	case signInPhaseEmail:
		out += "Campus email: [" + m.email.View() + "]\n\n"
		if m.submitting {
			out += "Sending code...\n\n"
		}
		out += helpStyle.Render("enter send code  esc back")
	case signInPhaseCode:
		out += fmt.Sprintf("A code was sent to %s (valid for %d minutes).\n\n", m.sentTo, m.expiryMin)
		out += "Code: [" + m.code.View() + "]\n\n"
		if m.submitting {
			out += "Signing in...\n\n"
		}
		out += helpStyle.Render("enter sign in  ctrl+r resend  esc change email")
	}

	return out
}
