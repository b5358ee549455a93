package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/okulikov/campushub/internal/service"
)

// resetModel renders the four-step password reset. The step itself lives in
// the reset flow service; this model only holds the inputs.
type resetModel struct {
	email      textinput.Model
	code       textinput.Model
	password   textinput.Model
	confirm    textinput.Model
	focus      int // within the password step: 0 password, 1 confirm
	submitting bool
}

func newResetModel() resetModel {
	email := textinput.New()
	email.Width = 40
	email.Placeholder = "you@university.edu"
	email.Focus()

	code := textinput.New()
	code.Width = 10
	code.CharLimit = 6
	code.Placeholder = "123456"

	password := textinput.New()
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return resetModel{email: email, code: code, password: password, confirm: confirm}
}

// focusStep moves keyboard focus to the input belonging to step.
func (m resetModel) focusStep(step service.ResetStep) resetModel {
	m.email.Blur()
	m.code.Blur()
	m.password.Blur()
	m.confirm.Blur()

	switch step {
	case service.StepEmail:
		m.email.Focus()
	case service.StepCode:
		m.code.Focus()
	case service.StepPassword:
		m.focus = 0
		m.password.Focus()
	}
	return m
}

func (m resetModel) view(st service.ResetState) string {
	out := titleStyle.Render("Reset password") + "\n\n"
	out += stepIndicator(st.Step) + "\n\n"

	switch st.Step {
	case service.StepEmail:
		out += "Campus email: [" + m.email.View() + "]\n\n"
		if m.submitting {
			out += "Sending code...\n\n"
		}
		out += helpStyle.Render("enter send code  esc back")
	case service.StepCode:
		out += "A reset code was sent to " + st.Email + ".\n\n"
		out += "Code: [" + m.code.View() + "]\n\n"
		if m.submitting {
			out += "Verifying...\n\n"
		}
		out += helpStyle.Render("enter verify  esc previous step")
	case service.StepPassword:
		out += "New password: [" + m.password.View() + "]\n"
		out += "Confirm:      [" + m.confirm.View() + "]\n\n"
		if m.submitting {
			out += "Saving...\n\n"
		}
		out += helpStyle.Render("tab next field  enter save  esc previous step")
	case service.StepDone:
		out += "Your password has been reset.\n\n"
		out += helpStyle.Render("enter go to sign-in")
	}

	return out
}

func stepIndicator(step service.ResetStep) string {
	labels := []string{"email", "code", "password", "done"}
	out := ""
	for i, label := range labels {
		if i > 0 {
			out += " -> "
		}
		if service.ResetStep(i+1) == step {
			out += "[" + label + "]"
		} else {
			out += label
		}
	}
	return helpStyle.Render(out)
}
