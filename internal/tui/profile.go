package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/okulikov/campushub/models"
)

type profileMode int

const (
	profileModeView profileMode = iota
	profileModeEdit
	profileModePicture
	profileModePassword
)

const (
	editFieldName = iota
	editFieldBio
	editFieldPhone
	editFieldMajor
	editFieldYear
	editFieldCount
)

const (
	passwordFieldCurrent = iota
	passwordFieldNew
	passwordFieldConfirm
	passwordFieldCount
)

type profileModel struct {
	mode       profileMode
	edit       []textinput.Model
	editFocus  int
	picture    textinput.Model
	password   []textinput.Model
	passFocus  int
	submitting bool
	status     string
}

func newProfileModel() profileModel {
	edit := make([]textinput.Model, editFieldCount)
	for i := range edit {
		edit[i] = textinput.New()
		edit[i].Width = 40
	}

	picture := textinput.New()
	picture.Width = 60
	picture.Placeholder = "/path/to/avatar.png"

	password := make([]textinput.Model, passwordFieldCount)
	for i := range password {
		password[i] = textinput.New()
		password[i].Width = 40
		password[i].EchoMode = textinput.EchoPassword
		password[i].EchoCharacter = '*'
	}

	return profileModel{edit: edit, picture: picture, password: password}
}

// enterEdit pre-fills the form from the current identity so untouched fields
// round-trip unchanged.
func (m profileModel) enterEdit(identity models.Identity) profileModel {
	m.mode = profileModeEdit
	m.editFocus = editFieldName
	m.edit[editFieldName].SetValue(identity.FullName)
	m.edit[editFieldBio].SetValue(identity.Bio)
	m.edit[editFieldPhone].SetValue(identity.Phone)
	m.edit[editFieldMajor].SetValue(identity.Major)
	m.edit[editFieldYear].SetValue(identity.YearOfStudy)
	for i := range m.edit {
		m.edit[i].Blur()
	}
	m.edit[editFieldName].Focus()
	return m
}

func (m profileModel) focusEdit(field int) profileModel {
	m.editFocus = field
	for i := range m.edit {
		if i == field {
			m.edit[i].Focus()
		} else {
			m.edit[i].Blur()
		}
	}
	return m
}

func (m profileModel) focusPassword(field int) profileModel {
	m.passFocus = field
	for i := range m.password {
		if i == field {
			m.password[i].Focus()
		} else {
			m.password[i].Blur()
		}
	}
	return m
}

func (m profileModel) toUpdateRequest() models.UpdateProfileRequest {
	return models.UpdateProfileRequest{
		FullName:    m.edit[editFieldName].Value(),
		Bio:         m.edit[editFieldBio].Value(),
		Phone:       m.edit[editFieldPhone].Value(),
		Major:       m.edit[editFieldMajor].Value(),
		YearOfStudy: m.edit[editFieldYear].Value(),
	}
}

func (m profileModel) toChangePasswordRequest() models.ChangePasswordRequest {
	return models.ChangePasswordRequest{
		CurrentPassword:    m.password[passwordFieldCurrent].Value(),
		NewPassword:        m.password[passwordFieldNew].Value(),
		ConfirmNewPassword: m.password[passwordFieldConfirm].Value(),
	}
}

func (m profileModel) viewFor(identity models.Identity) string {
	out := titleStyle.Render("Profile") + "\n\n"

	switch m.mode {
	case profileModeView:
		out += field("Name", identity.DisplayName())
		out += field("Email", identity.Email)
		out += field("Bio", identity.Bio)
		out += field("Phone", identity.Phone)
		out += field("Major", identity.Major)
		out += field("Year", identity.YearOfStudy)
		out += field("Role", identity.UserRole)
		picture := identity.ProfilePicture
		if picture == "" {
			picture = "none"
		}
		out += field("Picture", picture)
		if m.status != "" {
			out += "\n" + m.status + "\n"
		}
		out += "\n" + helpStyle.Render("e edit  u upload picture  d delete picture  w change password  c copy email  esc back")
	case profileModeEdit:
		out += "Full name: [" + m.edit[editFieldName].View() + "]\n"
		out += "Bio:       [" + m.edit[editFieldBio].View() + "]\n"
		out += "Phone:     [" + m.edit[editFieldPhone].View() + "]\n"
		out += "Major:     [" + m.edit[editFieldMajor].View() + "]\n"
		out += "Year:      [" + m.edit[editFieldYear].View() + "]\n\n"
		if m.submitting {
			out += "Saving...\n\n"
		}
		out += helpStyle.Render("tab next field  enter save  esc cancel")
	case profileModePicture:
		out += "Picture file: [" + m.picture.View() + "]\n\n"
		if m.submitting {
			out += "Uploading...\n\n"
		}
		out += helpStyle.Render("enter upload  esc cancel")
	case profileModePassword:
		out += "Current password: [" + m.password[passwordFieldCurrent].View() + "]\n"
		out += "New password:     [" + m.password[passwordFieldNew].View() + "]\n"
		out += "Confirm:          [" + m.password[passwordFieldConfirm].View() + "]\n\n"
		if m.submitting {
			out += "Changing...\n\n"
		}
		out += helpStyle.Render("tab next field  enter change  esc cancel")
	}

	return out
}

func field(name, value string) string {
	if value == "" {
		value = "-"
	}
	return name + ": " + value + "\n"
}
