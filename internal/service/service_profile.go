// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"sync"

	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/validators"
	"github.com/okulikov/campushub/models"
)

// ProfileState carries one flag per mutation so a slow picture upload never
// renders the field form as busy. The error slot is shared: whichever
// operation failed last owns it.
type ProfileState struct {
	IsSaving    bool
	IsUploading bool
	IsDeleting  bool
	Err         error
}

type profileService struct {
	adapter adapter.ServerAdapter
	engine  SessionEngine
	logger  *logger.Logger

	mu    sync.RWMutex
	state ProfileState
}

func NewProfileService(serverAdapter adapter.ServerAdapter, engine SessionEngine, log *logger.Logger) ProfileService {
	return &profileService{
		adapter: serverAdapter,
		engine:  engine,
		logger:  log.GetChildLogger("profile-service"),
	}
}

func (p *profileService) State() ProfileState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *profileService) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Err = nil
}

func (p *profileService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if err := validators.ValidateProfileUpdate(req); err != nil {
		p.fail(err)
		return err
	}

	p.setFlag(func(s *ProfileState) { s.IsSaving = true; s.Err = nil })
	defer p.setFlag(func(s *ProfileState) { s.IsSaving = false })

	if err := p.adapter.UpdateProfile(ctx, req); err != nil {
		mapped := mapAuthedError(err)
		p.fail(mapped)
		return mapped
	}

	p.refreshIdentity(ctx)
	return nil
}

func (p *profileService) UploadPicture(ctx context.Context, filename string, data []byte) error {
	if err := validators.ValidatePicture(filename, data); err != nil {
		p.fail(err)
		return err
	}

	p.setFlag(func(s *ProfileState) { s.IsUploading = true; s.Err = nil })
	defer p.setFlag(func(s *ProfileState) { s.IsUploading = false })

	if err := p.adapter.UploadProfilePicture(ctx, filename, data); err != nil {
		mapped := mapAuthedError(err)
		p.fail(mapped)
		return mapped
	}

	p.refreshIdentity(ctx)
	return nil
}

func (p *profileService) DeletePicture(ctx context.Context) error {
	p.setFlag(func(s *ProfileState) { s.IsDeleting = true; s.Err = nil })
	defer p.setFlag(func(s *ProfileState) { s.IsDeleting = false })

	if err := p.adapter.DeleteProfilePicture(ctx); err != nil {
		mapped := mapAuthedError(err)
		p.fail(mapped)
		return mapped
	}

	p.refreshIdentity(ctx)
	return nil
}

func (p *profileService) setFlag(set func(*ProfileState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	set(&p.state)
}

func (p *profileService) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Err = err
}

// refreshIdentity pulls the mutated profile back into the session engine. The
// mutation itself already succeeded, so a refresh failure is only logged.
func (p *profileService) refreshIdentity(ctx context.Context) {
	if err := p.engine.RefreshIdentity(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("identity refresh after profile mutation failed")
	}
}
