package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}

// promptOverlayModel is the sign-in prompt shown when an anonymous user tries
// a session-gated action; description comes from the deferred-action gate.
type promptOverlayModel struct {
	description string
}

func (m promptOverlayModel) View() string {
	content := "Sign in to " + m.description + "\n\n" + helpStyle.Render("enter sign in    esc not now")
	return overlayBoxStyle.Render(content)
}

type confirmOverlayModel struct {
	question string
}

func (m confirmOverlayModel) View() string {
	content := m.question + "\n\n" + helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}
