// Package tui implements the interactive terminal front end: a menu-driven
// loop over the file and folder batches, the history browser and the
// confirmation screens.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Baconcat1912/encryptify/internal/config"
	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/service"
	"github.com/Baconcat1912/encryptify/internal/workers"
	"github.com/Baconcat1912/encryptify/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.Services
	runner    *workers.Runner
	defaults  config.AppDefaults
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, runner *workers.Runner, defaults config.AppDefaults, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		runner:    runner,
		defaults:  defaults,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// MainLoop runs the interactive loop until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainModel(ctx, t.services, t.runner, t.defaults, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
