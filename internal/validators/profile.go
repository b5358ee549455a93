package validators

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/okulikov/campushub/models"
)

// MaxPictureSize is the largest accepted profile picture, mirroring the
// server-side limit.
const MaxPictureSize = 5 * 1024 * 1024 // 5MB

var allowedPictureTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ValidateProfileUpdate checks the mutable profile fields. All fields are
// optional; set fields must individually pass, and at least one must be set.
func ValidateProfileUpdate(req models.UpdateProfileRequest) error {
	if req == (models.UpdateProfileRequest{}) {
		return ErrNoFieldsToUpdate
	}

	if req.FullName != "" && len(strings.TrimSpace(req.FullName)) < MinNameLength {
		return ErrNameTooShort
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return ErrInvalidPhone
	}
	if len(req.Bio) > MaxBioLength {
		return ErrBioTooLong
	}

	return nil
}

// ValidatePicture checks the size bound, the filename extension, and the
// sniffed content type. The extension alone is not trusted.
func ValidatePicture(filename string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyPicture
	}
	if len(data) > MaxPictureSize {
		return ErrPictureTooLarge
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return ErrUnsupportedPicture
	}

	contentType := http.DetectContentType(data)
	if _, ok := allowedPictureTypes[contentType]; !ok {
		return ErrUnsupportedPicture
	}

	return nil
}
