package client

import (
	"context"
	"errors"

	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/service"
	"github.com/Baconcat1912/encryptify/internal/tui"
	"github.com/Baconcat1912/encryptify/internal/workers"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	runner   *workers.Runner
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, runner *workers.Runner, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || runner == nil {
		return nil, errors.New("app requires services, ui and runner")
	}
	return &App{
		services: services,
		tui:      ui,
		runner:   runner,
		logger:   log,
	}, nil
}

// Run starts the batch runner and blocks in the interactive loop until the
// user quits. Queued work is drained before shutdown so a batch in flight
// always finishes its current file.
func (a *App) Run() error {
	ctx := context.Background()

	a.runner.Run()
	defer a.runner.Stop()

	if err := a.tui.MainLoop(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit")
			return nil
		}
		return err
	}
	return nil
}
