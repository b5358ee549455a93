// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package tui

import "github.com/okulikov/campushub/internal/service"

// resolveProtected decides what to render when the user asks for a screen
// that needs a session. While the startup check is still settling it answers
// with the loading screen instead of redirecting, so a user with a valid
// stored session is never bounced through sign-in on a slow start.
func resolveProtected(st service.SessionState, target screen) screen {
	if st.IsAuthenticated {
		return target
	}
	if st.IsLoading {
		return screenLoading
	}
	return screenSignIn
}
