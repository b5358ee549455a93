// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/mock"
	"github.com/okulikov/campushub/internal/validators"
	"github.com/okulikov/campushub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOTPFlow(t *testing.T, ctrl *gomock.Controller) (OTPFlow, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	flow := NewOTPFlow(mockAdapter, validators.NewAuthValidator([]string{".edu"}))
	return flow, mockAdapter
}

func TestOTPFlow_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		SendOTP(ctx, models.SendOTPRequest{Email: "alice@university.edu", UserName: "Alice", Purpose: models.PurposeAuthentication}).
		Return(models.OTPDelivery{ExpiryMinutes: 10}, nil)

	err := flow.Send(ctx, "alice@university.edu", "Alice", models.PurposeAuthentication)

	require.NoError(t, err)
	st := flow.State()
	assert.True(t, st.IsSent)
	assert.False(t, st.IsVerified)
	assert.Equal(t, 10, st.ExpiryMinutes)
	assert.Equal(t, "alice@university.edu", st.Email)
}

func TestOTPFlow_Send_DefaultExpiryWhenServerOmitsIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SendOTP(ctx, gomock.Any()).Return(models.OTPDelivery{}, nil)

	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposeAuthentication))
	assert.Equal(t, DefaultOTPExpiryMinutes, flow.State().ExpiryMinutes)
}

func TestOTPFlow_Send_InvalidEmailSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, _ := newTestOTPFlow(t, ctrl)

	err := flow.Send(context.Background(), "alice@gmail.com", "", models.PurposeAuthentication)

	assert.ErrorIs(t, err, validators.ErrEmailDomainNotAllowed)
	st := flow.State()
	assert.False(t, st.IsSent)
	assert.ErrorIs(t, st.Err, validators.ErrEmailDomainNotAllowed)
}

func TestOTPFlow_PurposeRoundTripsIntoVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SendOTP(ctx, gomock.Any()).Return(models.OTPDelivery{ExpiryMinutes: 10}, nil)
	mockAdapter.EXPECT().
		VerifyOTP(ctx, models.VerifyOTPRequest{
			Email:   "alice@university.edu",
			OTP:     "123456",
			Purpose: models.PurposePasswordReset,
		}).
		Return(nil)

	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposePasswordReset))
	require.NoError(t, flow.Verify(ctx, "123456"))

	assert.True(t, flow.State().IsVerified)
}

func TestOTPFlow_SendClearsPriorVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SendOTP(ctx, gomock.Any()).Return(models.OTPDelivery{ExpiryMinutes: 10}, nil).Times(2)
	mockAdapter.EXPECT().VerifyOTP(ctx, gomock.Any()).Return(nil)

	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposeAuthentication))
	require.NoError(t, flow.Verify(ctx, "123456"))
	require.True(t, flow.State().IsVerified)

	// Re-sending invalidates the code that was verified before it.
	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposeAuthentication))
	assert.False(t, flow.State().IsVerified)
}

func TestOTPFlow_VerifyBeforeSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, _ := newTestOTPFlow(t, ctrl)

	err := flow.Verify(context.Background(), "123456")

	assert.ErrorIs(t, err, ErrCodeNotSent)
}

func TestOTPFlow_Verify_ServerRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SendOTP(ctx, gomock.Any()).Return(models.OTPDelivery{ExpiryMinutes: 10}, nil)
	reject := &adapter.RequestError{Message: "Invalid or expired OTP", Status: http.StatusBadRequest}
	mockAdapter.EXPECT().VerifyOTP(ctx, gomock.Any()).Return(reject)

	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposeAuthentication))
	err := flow.Verify(ctx, "123456")

	require.Error(t, err)
	st := flow.State()
	assert.False(t, st.IsVerified)
	assert.Equal(t, "Invalid or expired OTP", st.Err.Error())
	// The sent state survives a failed verify so the user can retry the code.
	assert.True(t, st.IsSent)
}

func TestOTPFlow_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flow, mockAdapter := newTestOTPFlow(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SendOTP(ctx, gomock.Any()).Return(models.OTPDelivery{ExpiryMinutes: 10}, nil)
	require.NoError(t, flow.Send(ctx, "alice@university.edu", "", models.PurposeAuthentication))

	flow.Reset()

	assert.Equal(t, OTPState{}, flow.State())
}
