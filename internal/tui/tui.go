// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package tui is the terminal front end: a single bubbletea program that
// renders the welcome, authentication, feed and profile screens on top of the
// service layer. All session logic lives in the services; models here only
// hold inputs, cursors and in-flight flags.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/service"
)

type TUI struct {
	services  *service.ClientServices
	resources adapter.ResourceAdapter
	log       *logger.Logger
}

func New(services *service.ClientServices, resources adapter.ResourceAdapter, log *logger.Logger) *TUI {
	return &TUI{services: services, resources: resources, log: log.GetChildLogger("tui")}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.resources)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.log.Debug().Msg("starting terminal UI")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}
