package tui

import "github.com/charmbracelet/bubbles/spinner"

type welcomeModel struct {
	items     []string
	idx       int
	restoring bool
	spinner   spinner.Model
}

func newWelcomeModel() welcomeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return welcomeModel{
		items: []string{
			"Sign in",
			"Create account",
			"Reset password",
			"Browse events as guest",
		},
		spinner: s,
	}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("CampusHub") + "\n\n"
	if m.restoring {
		out += m.spinner.View() + " Restoring session...\n\n"
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("q quit")
	return out
}
