package tui

import "github.com/okulikov/campushub/models"

type startupDoneMsg struct {
	err error
}

type codeSentMsg struct {
	err error
}

type signedInMsg struct {
	err error
}

type signupSubmittedMsg struct {
	err error
}

type signedOutMsg struct{}

type resetAdvancedMsg struct {
	err error
}

type feedLoadedMsg struct {
	events []models.Event
	posts  []models.Post
	err    error
}

// gateActionMsg is the outcome of a session-gated feed action: either it ran
// (err carries the result) or it was deferred and the sign-in prompt should
// open with description.
type gateActionMsg struct {
	deferred    bool
	description string
	err         error
}

type resumedMsg struct {
	err error
}

type profileMutatedMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
