package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

// NewApp assembles the client runtime from pre-built services and UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run implements [Client]. It loops auth flow -> main loop so that signing
// out drops back to the sign-in screen instead of exiting the process.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.AuthFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("auth flow: %w", err)
		}

		a.logger.Info().Int64("user_id", user.ID).Msg("session established")

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Int64("user_id", user.ID).Msg("signed out")
	}
}
