package tui

import (
	"testing"

	"github.com/okulikov/campushub/internal/service"
	"github.com/okulikov/campushub/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveProtected(t *testing.T) {
	identity := &models.Identity{Email: "alice@university.edu"}

	tests := []struct {
		name  string
		state service.SessionState
		want  screen
	}{
		{
			name:  "authenticated goes through",
			state: service.SessionState{Identity: identity, IsAuthenticated: true},
			want:  screenProfile,
		},
		{
			name:  "still settling shows the loading screen, no redirect yet",
			state: service.SessionState{IsLoading: true},
			want:  screenLoading,
		},
		{
			name:  "settled anonymous redirects to sign-in",
			state: service.SessionState{},
			want:  screenSignIn,
		},
		{
			name:  "authenticated wins even while a refresh is loading",
			state: service.SessionState{Identity: identity, IsAuthenticated: true, IsLoading: true},
			want:  screenProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveProtected(tt.state, screenProfile))
		})
	}
}
