// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/service"
	"github.com/okulikov/campushub/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenSignIn
	screenSignUp
	screenSignUpOTP
	screenReset
	screenHome
	screenProfile
	screenLoading
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	resources adapter.ResourceAdapter

	currentScreen screen
	// pendingScreen is a protected target waiting for the startup check to
	// settle; screenWelcome means "nothing pending".
	pendingScreen screen

	welcome   welcomeModel
	signIn    signInModel
	signUp    signUpModel
	signUpOTP signUpOTPModel
	reset     resetModel
	home      homeModel
	profile   profileModel

	showError    bool
	errorOverlay errorOverlayModel
	showPrompt   bool
	prompt       promptOverlayModel
	showConfirm  bool
	confirm      confirmOverlayModel
	confirmCmd   tea.Cmd

	quitting bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, resources adapter.ResourceAdapter) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		resources:     resources,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		signIn:        newSignInModel(),
		signUp:        newSignUpModel(),
		reset:         newResetModel(),
		home:          newHomeModel(),
		profile:       newProfileModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdStartupCheck(), m.welcome.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showPrompt {
			return m.updatePrompt(msg)
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case startupDoneMsg:
		return m.onStartupDone(msg)
	case codeSentMsg:
		return m.onCodeSent(msg)
	case signedInMsg:
		return m.onSignedIn(msg)
	case signupSubmittedMsg:
		m.signUp.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.signUpOTP = newSignUpOTPModel(m.signUp.inputs[signupFieldEmail].Value())
		m.currentScreen = screenSignUpOTP
		return m, nil
	case resetAdvancedMsg:
		m.reset.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.reset = m.reset.focusStep(m.services.Reset.State().Step)
		return m, nil
	case signedOutMsg:
		m.currentScreen = screenWelcome
		m.welcome.idx = 0
		return m, nil
	case feedLoadedMsg:
		return m.onFeedLoaded(msg)
	case gateActionMsg:
		return m.onGateAction(msg)
	case resumedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.home.status = "Done!"
		return m, tea.Batch(m.cmdLoadFeed(), cmdClearStatus())
	case profileMutatedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.profile.mode = profileModeView
		m.profile.status = "Saved!"
		return m, cmdClearStatus()
	case passwordChangedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.profile.mode = profileModeView
		m.profile.status = "Password changed!"
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.home.status = "Copied!"
		m.profile.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.home.status = ""
		m.profile.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenSignIn:
		return m.updateSignIn(msg)
	case screenSignUp:
		return m.updateSignUp(msg)
	case screenSignUpOTP:
		return m.updateSignUpOTP(msg)
	case screenReset:
		return m.updateReset(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenLoading:
		return m.updateLoading(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		m.welcome.restoring = m.services.Engine.State().IsLoading
		body = m.welcome.View()
	case screenSignIn:
		body = m.signIn.View()
	case screenSignUp:
		body = m.signUp.View()
	case screenSignUpOTP:
		body = m.signUpOTP.View()
	case screenReset:
		body = m.reset.view(m.services.Reset.State())
	case screenHome:
		body = m.home.viewFor(m.userLine())
	case screenProfile:
		body = m.profile.viewFor(m.identity())
	case screenLoading:
		body = m.welcome.spinner.View() + " Checking session..."
	}

	if m.showPrompt {
		body += "\n\n" + m.prompt.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// ── message handlers ─────────────────────────────────────────────────────────

func (m appModel) onStartupDone(msg startupDoneMsg) (tea.Model, tea.Cmd) {
	m.welcome.restoring = false
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
	}

	st := m.services.Engine.State()

	// A protected screen was requested while the check was in flight: the
	// guard can finally answer.
	if m.pendingScreen != screenWelcome {
		target := m.pendingScreen
		m.pendingScreen = screenWelcome
		m.currentScreen = resolveProtected(st, target)
		return m, nil
	}

	if st.IsAuthenticated && m.currentScreen == screenWelcome {
		return m.gotoHome()
	}
	return m, nil
}

func (m appModel) onCodeSent(msg codeSentMsg) (tea.Model, tea.Cmd) {
	m.signIn.submitting = false
	m.signUpOTP.submitting = false
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
		return m, nil
	}

	if m.currentScreen == screenSignIn {
		flow := m.services.SignInOTP.State()
		m.signIn.phase = signInPhaseCode
		m.signIn.sentTo = flow.Email
		m.signIn.expiryMin = flow.ExpiryMinutes
		m.signIn.code.Focus()
		m.signIn.email.Blur()
	}
	return m, nil
}

func (m appModel) onSignedIn(msg signedInMsg) (tea.Model, tea.Cmd) {
	m.signIn.submitting = false
	m.signUpOTP.submitting = false
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
		return m, nil
	}

	m.signIn = newSignInModel()

	// Sign-in happened for a deferred action: run it now.
	if _, pending := m.services.Gate.Pending(); pending {
		model, cmd := m.gotoHome()
		return model, tea.Batch(cmd, m.cmdResume())
	}
	return m.gotoHome()
}

func (m appModel) onFeedLoaded(msg feedLoadedMsg) (tea.Model, tea.Cmd) {
	m.home.loading = false
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
		return m, nil
	}
	m.home.events = msg.events
	m.home.posts = msg.posts
	if n := m.home.sectionLen(); m.home.idx >= n {
		m.home.idx = n - 1
	}
	if m.home.idx < 0 {
		m.home.idx = 0
	}
	return m, nil
}

func (m appModel) onGateAction(msg gateActionMsg) (tea.Model, tea.Cmd) {
	if msg.deferred {
		m.showPrompt = true
		m.prompt.description = msg.description
		return m, nil
	}
	if msg.err != nil {
		m.showErrorf(msg.err.Error())
		return m, nil
	}
	m.home.status = "Done!"
	return m, tea.Batch(m.cmdLoadFeed(), cmdClearStatus())
}

// ── overlay updates ──────────────────────────────────────────────────────────

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.showPrompt = false
		m.currentScreen = screenSignIn
	case key.Matches(msg, keys.esc):
		m.showPrompt = false
		m.services.Gate.Dismiss()
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		cmd := m.confirmCmd
		m.confirmCmd = nil
		return m, cmd
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirmCmd = nil
	}
	return m, nil
}

// ── screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case 0:
			m.currentScreen = screenSignIn
		case 1:
			m.currentScreen = screenSignUp
		case 2:
			m.services.Reset.Reset()
			m.reset = newResetModel()
			m.currentScreen = screenReset
		case 3:
			return m.gotoHome()
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.signIn.phase == signInPhaseCode {
				m.signIn.phase = signInPhaseEmail
				m.signIn.code.Blur()
				m.signIn.email.Focus()
				return m, nil
			}
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.resend):
			if m.signIn.phase == signInPhaseCode {
				m.signIn.submitting = true
				return m, m.cmdSendSignInCode(m.signIn.sentTo)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signIn.submitting {
				return m, nil
			}
			if m.signIn.phase == signInPhaseEmail {
				m.signIn.submitting = true
				return m, m.cmdSendSignInCode(strings.TrimSpace(m.signIn.email.Value()))
			}
			m.signIn.submitting = true
			return m, m.cmdSignIn(m.signIn.sentTo, strings.TrimSpace(m.signIn.code.Value()))
		}
	}

	var cmd tea.Cmd
	if m.signIn.phase == signInPhaseEmail {
		m.signIn.email, cmd = m.signIn.email.Update(msg)
	} else {
		m.signIn.code, cmd = m.signIn.code.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateSignUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signUp = m.signUp.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signUp = m.signUp.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.space):
			if m.signUp.focus == signupFieldTerms {
				m.signUp.terms = !m.signUp.terms
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			if m.signUp.submitting {
				return m, nil
			}
			m.signUp.submitting = true
			return m, m.cmdSignup(m.signUp.toRequest())
		}
	}

	if m.signUp.focus < signupFieldTerms {
		var cmd tea.Cmd
		m.signUp.inputs[m.signUp.focus], cmd = m.signUp.inputs[m.signUp.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateSignUpOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSignUp
			return m, nil
		case key.Matches(keyMsg, keys.resend):
			m.signUpOTP.submitting = true
			return m, m.cmdResendSignupCode(m.signUpOTP.email)
		case key.Matches(keyMsg, keys.enter):
			if m.signUpOTP.submitting {
				return m, nil
			}
			m.signUpOTP.submitting = true
			return m, m.cmdVerifySignup(m.signUpOTP.email, strings.TrimSpace(m.signUpOTP.code.Value()))
		}
	}

	var cmd tea.Cmd
	m.signUpOTP.code, cmd = m.signUpOTP.code.Update(msg)
	return m, cmd
}

func (m appModel) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.services.Reset.State()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if st.Step == service.StepEmail {
				m.currentScreen = screenWelcome
				return m, nil
			}
			if st.Step != service.StepDone {
				if err := m.services.Reset.GoToStep(st.Step - 1); err == nil {
					m.reset = m.reset.focusStep(st.Step - 1)
				}
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			if st.Step == service.StepPassword {
				m.reset.focus = 1 - m.reset.focus
				if m.reset.focus == 0 {
					m.reset.confirm.Blur()
					m.reset.password.Focus()
				} else {
					m.reset.password.Blur()
					m.reset.confirm.Focus()
				}
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.reset.submitting {
				return m, nil
			}
			switch st.Step {
			case service.StepEmail:
				m.reset.submitting = true
				return m, m.cmdResetEmail(strings.TrimSpace(m.reset.email.Value()))
			case service.StepCode:
				m.reset.submitting = true
				return m, m.cmdResetCode(strings.TrimSpace(m.reset.code.Value()))
			case service.StepPassword:
				m.reset.submitting = true
				return m, m.cmdResetPassword(m.reset.password.Value(), m.reset.confirm.Value())
			case service.StepDone:
				m.services.Reset.Reset()
				m.reset = newResetModel()
				m.currentScreen = screenSignIn
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch st.Step {
	case service.StepEmail:
		m.reset.email, cmd = m.reset.email.Update(msg)
	case service.StepCode:
		m.reset.code, cmd = m.reset.code.Update(msg)
	case service.StepPassword:
		if m.reset.focus == 0 {
			m.reset.password, cmd = m.reset.password.Update(msg)
		} else {
			m.reset.confirm, cmd = m.reset.confirm.Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < m.home.sectionLen()-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		if m.home.section == sectionEvents {
			m.home.section = sectionPosts
		} else {
			m.home.section = sectionEvents
		}
		m.home.idx = 0
	case key.Matches(keyMsg, keys.enter):
		if event, ok := m.home.currentEvent(); ok {
			return m, m.cmdJoinEvent(event)
		}
		if post, ok := m.home.currentPost(); ok {
			return m, m.cmdLikePost(post)
		}
	case key.Matches(keyMsg, keys.copy):
		if event, ok := m.home.currentEvent(); ok && event.Location != "" {
			return m, cmdCopyToClipboard(event.Location)
		}
	case key.Matches(keyMsg, keys.refresh):
		if !m.home.loading {
			m.home.loading = true
			return m, tea.Batch(m.home.spinner.Tick, m.cmdLoadFeed())
		}
	case key.Matches(keyMsg, keys.profile):
		return m.gotoProfile()
	case key.Matches(keyMsg, keys.signOut):
		if m.services.Engine.State().IsAuthenticated {
			return m, m.cmdSignOut()
		}
		m.currentScreen = screenSignIn
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.profile.mode {
		case profileModeView:
			return m.updateProfileView(keyMsg)
		case profileModeEdit:
			return m.updateProfileEdit(keyMsg)
		case profileModePicture:
			return m.updateProfilePicture(keyMsg)
		case profileModePassword:
			return m.updateProfilePassword(keyMsg)
		}
	}

	var cmd tea.Cmd
	switch m.profile.mode {
	case profileModeEdit:
		m.profile.edit[m.profile.editFocus], cmd = m.profile.edit[m.profile.editFocus].Update(msg)
	case profileModePicture:
		m.profile.picture, cmd = m.profile.picture.Update(msg)
	case profileModePassword:
		m.profile.password[m.profile.passFocus], cmd = m.profile.password[m.profile.passFocus].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateProfileView(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.gotoHome()
	case key.Matches(keyMsg, keys.edit):
		m.profile = m.profile.enterEdit(m.identity())
	case key.Matches(keyMsg, keys.upload):
		m.profile.mode = profileModePicture
		m.profile.picture.Focus()
	case key.Matches(keyMsg, keys.remove):
		m.showConfirm = true
		m.confirm.question = "Delete your profile picture?"
		m.confirmCmd = m.cmdDeletePicture()
	case key.Matches(keyMsg, keys.passwd):
		m.profile.mode = profileModePassword
		m.profile.passFocus = passwordFieldCurrent
		for i := range m.profile.password {
			m.profile.password[i].SetValue("")
			m.profile.password[i].Blur()
		}
		m.profile.password[passwordFieldCurrent].Focus()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.identity().Email)
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateProfileEdit(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.profile.mode = profileModeView
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.profile = m.profile.focusEdit((m.profile.editFocus + 1) % editFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.profile = m.profile.focusEdit((m.profile.editFocus - 1 + editFieldCount) % editFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.profile.submitting {
			return m, nil
		}
		m.profile.submitting = true
		return m, m.cmdUpdateProfile(m.profile.toUpdateRequest())
	}

	var cmd tea.Cmd
	m.profile.edit[m.profile.editFocus], cmd = m.profile.edit[m.profile.editFocus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateProfilePicture(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.profile.mode = profileModeView
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.profile.submitting {
			return m, nil
		}
		m.profile.submitting = true
		return m, m.cmdUploadPicture(strings.TrimSpace(m.profile.picture.Value()))
	}

	var cmd tea.Cmd
	m.profile.picture, cmd = m.profile.picture.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateProfilePassword(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.profile.mode = profileModeView
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.profile = m.profile.focusPassword((m.profile.passFocus + 1) % passwordFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.profile = m.profile.focusPassword((m.profile.passFocus - 1 + passwordFieldCount) % passwordFieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.profile.submitting {
			return m, nil
		}
		m.profile.submitting = true
		return m, m.cmdChangePassword(m.profile.toChangePasswordRequest())
	}

	var cmd tea.Cmd
	m.profile.password[m.profile.passFocus], cmd = m.profile.password[m.profile.passFocus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.pendingScreen = screenWelcome
		return m.gotoHome()
	}
	return m, nil
}

// ── navigation ───────────────────────────────────────────────────────────────

func (m appModel) gotoHome() (tea.Model, tea.Cmd) {
	m.currentScreen = screenHome
	m.home.loading = true
	return m, tea.Batch(m.home.spinner.Tick, m.cmdLoadFeed())
}

// gotoProfile runs the target through the route guard: straight in when a
// session exists, hold on the loading screen while the startup check is in
// flight, redirect to sign-in once settled anonymous.
func (m appModel) gotoProfile() (tea.Model, tea.Cmd) {
	resolved := resolveProtected(m.services.Engine.State(), screenProfile)
	m.currentScreen = resolved
	if resolved == screenLoading {
		m.pendingScreen = screenProfile
		return m, m.welcome.spinner.Tick
	}
	if resolved == screenProfile {
		m.profile.mode = profileModeView
	}
	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentScreen == screenHome && m.home.loading:
		m.home.spinner, cmd = m.home.spinner.Update(msg)
	case m.currentScreen == screenWelcome || m.currentScreen == screenLoading:
		m.welcome.spinner, cmd = m.welcome.spinner.Update(msg)
	}
	return m, cmd
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) identity() models.Identity {
	st := m.services.Engine.State()
	if st.Identity == nil {
		return models.Identity{}
	}
	return *st.Identity
}

func (m appModel) userLine() string {
	st := m.services.Engine.State()
	if st.IsAuthenticated {
		return "signed in as " + st.Identity.DisplayName()
	}
	return "browsing as guest"
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdStartupCheck() tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		return startupDoneMsg{err: engine.StartupCheck(ctx)}
	}
}

func (m appModel) cmdSendSignInCode(email string) tea.Cmd {
	ctx := m.ctx
	flow := m.services.SignInOTP
	return func() tea.Msg {
		return codeSentMsg{err: flow.Send(ctx, email, "", models.PurposeAuthentication)}
	}
}

func (m appModel) cmdSignIn(email, code string) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		return signedInMsg{err: engine.Login(ctx, email, code)}
	}
}

func (m appModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		return signupSubmittedMsg{err: engine.SignupBegin(ctx, req)}
	}
}

func (m appModel) cmdResendSignupCode(email string) tea.Cmd {
	ctx := m.ctx
	flow := m.services.SignupOTP
	return func() tea.Msg {
		return codeSentMsg{err: flow.Send(ctx, email, "", models.PurposeSignup)}
	}
}

func (m appModel) cmdVerifySignup(email, code string) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		return signedInMsg{err: engine.SignupVerify(ctx, email, code)}
	}
}

func (m appModel) cmdResetEmail(email string) tea.Cmd {
	ctx := m.ctx
	flow := m.services.Reset
	return func() tea.Msg {
		return resetAdvancedMsg{err: flow.SubmitEmail(ctx, email)}
	}
}

func (m appModel) cmdResetCode(code string) tea.Cmd {
	ctx := m.ctx
	flow := m.services.Reset
	return func() tea.Msg {
		return resetAdvancedMsg{err: flow.SubmitCode(ctx, code)}
	}
}

func (m appModel) cmdResetPassword(password, confirm string) tea.Cmd {
	ctx := m.ctx
	flow := m.services.Reset
	return func() tea.Msg {
		return resetAdvancedMsg{err: flow.SubmitPassword(ctx, password, confirm)}
	}
}

func (m appModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	resources := m.resources
	return func() tea.Msg {
		events, err := resources.ListEvents(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		posts, err := resources.ListPosts(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		return feedLoadedMsg{events: events, posts: posts}
	}
}

func (m appModel) cmdJoinEvent(event models.Event) tea.Cmd {
	ctx := m.ctx
	gate := m.services.Gate
	resources := m.resources
	description := fmt.Sprintf("join %q", event.Title)
	return func() tea.Msg {
		ran, err := gate.RequireAuth(ctx, description, func(ctx context.Context) error {
			return resources.JoinEvent(ctx, event.ID)
		})
		if !ran {
			return gateActionMsg{deferred: true, description: description}
		}
		return gateActionMsg{err: err}
	}
}

func (m appModel) cmdLikePost(post models.Post) tea.Cmd {
	ctx := m.ctx
	gate := m.services.Gate
	resources := m.resources
	description := fmt.Sprintf("like %q", post.Title)
	return func() tea.Msg {
		ran, err := gate.RequireAuth(ctx, description, func(ctx context.Context) error {
			return resources.LikePost(ctx, post.ID)
		})
		if !ran {
			return gateActionMsg{deferred: true, description: description}
		}
		return gateActionMsg{err: err}
	}
}

func (m appModel) cmdResume() tea.Cmd {
	ctx := m.ctx
	gate := m.services.Gate
	return func() tea.Msg {
		return resumedMsg{err: gate.Resume(ctx)}
	}
}

func (m appModel) cmdUpdateProfile(req models.UpdateProfileRequest) tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		return profileMutatedMsg{err: profile.UpdateProfile(ctx, req)}
	}
}

func (m appModel) cmdUploadPicture(path string) tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return profileMutatedMsg{err: fmt.Errorf("read picture: %w", err)}
		}
		return profileMutatedMsg{err: profile.UploadPicture(ctx, filepath.Base(path), data)}
	}
}

func (m appModel) cmdDeletePicture() tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		return profileMutatedMsg{err: profile.DeletePicture(ctx)}
	}
}

func (m appModel) cmdChangePassword(req models.ChangePasswordRequest) tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		return passwordChangedMsg{err: engine.ChangePassword(ctx, req)}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	engine := m.services.Engine
	return func() tea.Msg {
		_ = engine.Logout(ctx)
		return signedOutMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
