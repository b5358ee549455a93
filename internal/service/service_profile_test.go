// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/mock"
	"github.com/okulikov/campushub/internal/validators"
	"github.com/okulikov/campushub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T, ctrl *gomock.Controller) (ProfileService, *mock.MockServerAdapter, *stubEngine) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	engine := &stubEngine{authed: true}
	svc := NewProfileService(mockAdapter, engine, logger.Nop())
	return svc, mockAdapter, engine
}

func TestProfileService_UpdateProfile_RefreshesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, engine := newTestProfileService(t, ctrl)
	ctx := context.Background()

	req := models.UpdateProfileRequest{Bio: "hello campus"}
	mockAdapter.EXPECT().UpdateProfile(ctx, req).Return(nil)

	err := svc.UpdateProfile(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 1, engine.refreshCalls())
	st := svc.State()
	assert.False(t, st.IsSaving)
	assert.NoError(t, st.Err)
}

func TestProfileService_UpdateProfile_ValidationSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, engine := newTestProfileService(t, ctrl)

	err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{})

	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	assert.ErrorIs(t, svc.State().Err, validators.ErrNoFieldsToUpdate)
	assert.Zero(t, engine.refreshCalls())
}

func TestProfileService_UpdateProfile_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, engine := newTestProfileService(t, ctrl)
	ctx := context.Background()

	reject := &adapter.RequestError{Message: "Invalid or expired session", Status: http.StatusUnauthorized}
	mockAdapter.EXPECT().UpdateProfile(ctx, gomock.Any()).Return(reject)

	err := svc.UpdateProfile(ctx, models.UpdateProfileRequest{Bio: "hello"})

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, engine.refreshCalls())
}

func TestProfileService_UploadPicture_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, engine := newTestProfileService(t, ctrl)
	ctx := context.Background()

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	mockAdapter.EXPECT().UploadProfilePicture(ctx, "avatar.png", png).Return(nil)

	err := svc.UploadPicture(ctx, "avatar.png", png)

	require.NoError(t, err)
	assert.Equal(t, 1, engine.refreshCalls())
	assert.False(t, svc.State().IsUploading)
}

func TestProfileService_UploadPicture_RejectsOversized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestProfileService(t, ctrl)

	huge := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, validators.MaxPictureSize)...)
	err := svc.UploadPicture(context.Background(), "avatar.png", huge)

	assert.ErrorIs(t, err, validators.ErrPictureTooLarge)
}

func TestProfileService_DeletePicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, engine := newTestProfileService(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteProfilePicture(ctx).Return(nil)

	require.NoError(t, svc.DeletePicture(ctx))
	assert.Equal(t, 1, engine.refreshCalls())
}

func TestProfileService_LoadingFlagsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestProfileService(t, ctrl)
	ctx := context.Background()

	uploadStarted := make(chan struct{})
	release := make(chan struct{})

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	mockAdapter.EXPECT().
		UploadProfilePicture(ctx, "avatar.png", png).
		DoAndReturn(func(context.Context, string, []byte) error {
			close(uploadStarted)
			<-release
			return nil
		})
	mockAdapter.EXPECT().UpdateProfile(ctx, gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.UploadPicture(ctx, "avatar.png", png)
	}()

	<-uploadStarted
	st := svc.State()
	assert.True(t, st.IsUploading)
	assert.False(t, st.IsSaving, "a slow upload must not mark the field form busy")

	// A field save completes while the upload is still in flight.
	require.NoError(t, svc.UpdateProfile(ctx, models.UpdateProfileRequest{Bio: "hello"}))
	assert.True(t, svc.State().IsUploading)

	close(release)
	wg.Wait()
	assert.False(t, svc.State().IsUploading)
}

func TestProfileService_ClearError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestProfileService(t, ctrl)

	_ = svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{})
	require.Error(t, svc.State().Err)

	svc.ClearError()
	assert.NoError(t, svc.State().Err)
}
