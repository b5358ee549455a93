package client

import (
	"context"
	"fmt"

	"github.com/okulikov/campushub/internal/config"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/service"
	"github.com/okulikov/campushub/internal/tui"
)

// App owns the client process lifecycle: it runs the terminal UI in the
// foreground and the session keep-alive job in the background.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}
	if ui == nil {
		return nil, fmt.Errorf("terminal UI is required")
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		log:      log.GetChildLogger("client-app"),
	}, nil
}

// Run blocks until the user quits the UI. The keep-alive job starts right
// away: it skips ticks while the session is anonymous, so there is nothing to
// coordinate with the startup check.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.services.KeepAlive.Start(ctx, a.workers.RefreshInterval)
	defer a.services.KeepAlive.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	a.log.Info().Msg("client exited")
	return nil
}
