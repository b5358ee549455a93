package validators

import (
	"strings"
	"testing"

	"github.com/okulikov/campushub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	v := NewAuthValidator([]string{".edu", "campus.example.org"})

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "edu suffix", email: "alice@university.edu"},
		{name: "edu subdomain", email: "alice@cs.university.edu"},
		{name: "exact domain", email: "bob@campus.example.org"},
		{name: "case insensitive", email: "Alice@University.EDU"},
		{name: "disallowed domain", email: "mallory@gmail.com", wantErr: ErrEmailDomainNotAllowed},
		{name: "empty", email: "", wantErr: ErrEmailRequired},
		{name: "not an email", email: "not-an-email", wantErr: ErrEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewAuthValidator(nil)

	assert.NoError(t, v.ValidatePassword("hunter22x", "hunter22x"))
	assert.ErrorIs(t, v.ValidatePassword("short1", "short1"), ErrWeakPassword)
	assert.ErrorIs(t, v.ValidatePassword("nodigitshere", "nodigitshere"), ErrWeakPassword)
	assert.ErrorIs(t, v.ValidatePassword("12345678901", "12345678901"), ErrWeakPassword)
	assert.ErrorIs(t, v.ValidatePassword("hunter22x", "hunter22y"), ErrPasswordMismatch)
}

func TestValidateOTP(t *testing.T) {
	v := NewAuthValidator(nil)

	assert.NoError(t, v.ValidateOTP("123456"))
	assert.NoError(t, v.ValidateOTP(" 123456 "))
	assert.ErrorIs(t, v.ValidateOTP("12345"), ErrInvalidOTP)
	assert.ErrorIs(t, v.ValidateOTP("abc123"), ErrInvalidOTP)
	assert.ErrorIs(t, v.ValidateOTP(""), ErrInvalidOTP)
}

func TestValidateSignup(t *testing.T) {
	v := NewAuthValidator([]string{".edu"})

	valid := models.SignupRequest{
		Email:           "alice@university.edu",
		FullName:        "Alice Doe",
		Password:        "hunter22x",
		ConfirmPassword: "hunter22x",
		TermsAccepted:   true,
	}
	require.NoError(t, v.ValidateSignup(valid))

	noTerms := valid
	noTerms.TermsAccepted = false
	assert.ErrorIs(t, v.ValidateSignup(noTerms), ErrTermsNotAccepted)

	shortName := valid
	shortName.FullName = "A"
	assert.ErrorIs(t, v.ValidateSignup(shortName), ErrNameTooShort)
}

func TestValidateCompleteSignup(t *testing.T) {
	v := NewAuthValidator([]string{".edu"})

	valid := models.CompleteSignupRequest{
		Email:       "alice@university.edu",
		Password:    "hunter22x",
		FirstName:   "Alice",
		LastName:    "Doe",
		Major:       "CS",
		YearOfStudy: "2",
		UserRole:    "student",
	}
	require.NoError(t, v.ValidateCompleteSignup(valid))

	badPhone := valid
	badPhone.Phone = "call me"
	assert.ErrorIs(t, v.ValidateCompleteSignup(badPhone), ErrInvalidPhone)

	goodPhone := valid
	goodPhone.Phone = "+1 (555) 123-4567"
	assert.NoError(t, v.ValidateCompleteSignup(goodPhone))

	longBio := valid
	longBio.Bio = strings.Repeat("x", MaxBioLength+1)
	assert.ErrorIs(t, v.ValidateCompleteSignup(longBio), ErrBioTooLong)
}

func TestValidateProfileUpdate(t *testing.T) {
	assert.ErrorIs(t, ValidateProfileUpdate(models.UpdateProfileRequest{}), ErrNoFieldsToUpdate)

	assert.NoError(t, ValidateProfileUpdate(models.UpdateProfileRequest{Bio: "hi"}))
	assert.ErrorIs(t,
		ValidateProfileUpdate(models.UpdateProfileRequest{FullName: "A"}),
		ErrNameTooShort)
	assert.ErrorIs(t,
		ValidateProfileUpdate(models.UpdateProfileRequest{Bio: strings.Repeat("x", MaxBioLength+1)}),
		ErrBioTooLong)
}

func TestValidatePicture(t *testing.T) {
	pngHeader := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

	assert.NoError(t, ValidatePicture("avatar.png", pngHeader))
	assert.ErrorIs(t, ValidatePicture("avatar.png", nil), ErrEmptyPicture)
	assert.ErrorIs(t, ValidatePicture("avatar.gif", pngHeader), ErrUnsupportedPicture)
	assert.ErrorIs(t, ValidatePicture("avatar.png", []byte("plain text, not an image, padded to sniff")), ErrUnsupportedPicture)

	huge := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, MaxPictureSize)...)
	assert.ErrorIs(t, ValidatePicture("avatar.png", huge), ErrPictureTooLarge)
}
