package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/okulikov/campushub/models"
)

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
	signupFieldTerms // virtual checkbox row, toggled with space
	signupFieldCount
)

type signUpModel struct {
	inputs     []textinput.Model
	focus      int
	terms      bool
	submitting bool
}

func newSignUpModel() signUpModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[signupFieldName].Placeholder = "Alice Doe"
	inputs[signupFieldEmail].Placeholder = "you@university.edu"
	inputs[signupFieldPassword].EchoMode = textinput.EchoPassword
	inputs[signupFieldPassword].EchoCharacter = '*'
	inputs[signupFieldConfirm].EchoMode = textinput.EchoPassword
	inputs[signupFieldConfirm].EchoCharacter = '*'
	inputs[signupFieldName].Focus()

	return signUpModel{inputs: inputs}
}

func (m signUpModel) focusNext() signUpModel {
	return m.focusField((m.focus + 1) % signupFieldCount)
}

func (m signUpModel) focusPrev() signUpModel {
	return m.focusField((m.focus - 1 + signupFieldCount) % signupFieldCount)
}

func (m signUpModel) focusField(field int) signUpModel {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m signUpModel) toRequest() models.SignupRequest {
	return models.SignupRequest{
		FullName:        m.inputs[signupFieldName].Value(),
		Email:           m.inputs[signupFieldEmail].Value(),
		Password:        m.inputs[signupFieldPassword].Value(),
		ConfirmPassword: m.inputs[signupFieldConfirm].Value(),
		TermsAccepted:   m.terms,
	}
}

func (m signUpModel) View() string {
	checkbox := "[ ]"
	if m.terms {
		checkbox = "[x]"
	}
	termsCursor := "  "
	if m.focus == signupFieldTerms {
		termsCursor = "> "
	}

	out := titleStyle.Render("Create account") + "\n\n"
	out += "Full name: [" + m.inputs[signupFieldName].View() + "]\n"
	out += "Email:     [" + m.inputs[signupFieldEmail].View() + "]\n"
	out += "Password:  [" + m.inputs[signupFieldPassword].View() + "]\n"
	out += "Confirm:   [" + m.inputs[signupFieldConfirm].View() + "]\n\n"
	out += fmt.Sprintf("%s%s I accept the terms of service\n\n", termsCursor, checkbox)
	if m.submitting {
		out += "Submitting...\n\n"
	}
	out += helpStyle.Render("tab next field  space toggle terms  enter submit  esc back")
	return out
}

// signUpOTPModel is the code-entry step that follows a submitted signup.
type signUpOTPModel struct {
	email      string
	code       textinput.Model
	submitting bool
}

func newSignUpOTPModel(email string) signUpOTPModel {
	code := textinput.New()
	code.Width = 10
	code.CharLimit = 6
	code.Placeholder = "123456"
	code.Focus()
	return signUpOTPModel{email: email, code: code}
}

func (m signUpOTPModel) View() string {
	out := titleStyle.Render("Verify your email") + "\n\n"
	out += fmt.Sprintf("A verification code was sent to %s.\n\n", m.email)
	out += "Code: [" + m.code.View() + "]\n\n"
	if m.submitting {
		out += "Verifying...\n\n"
	}
	out += helpStyle.Render("enter verify  ctrl+r resend  esc back")
	return out
}
