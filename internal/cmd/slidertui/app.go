package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/ui"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It owns the ui and routes config reloads into it.
type App struct {
	ui            UI
	config        config.Config
	configUpdates chan config.Config
	recorder      ui.StateRecorder
	restored      map[string]pages.Restored
}

func NewApp(conf config.Config, recorder ui.StateRecorder, restored map[string]pages.Restored,
	configUpdates chan config.Config,
) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
		recorder:      recorder,
		restored:      restored,
	}
}

// Start runs the ui until it exits or ctx is cancelled.
func (app *App) Start(ctx context.Context, loader ui.ConfigWriter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	program := app.createUI(ctx, loader)

	group.Go(func() error {
		defer cancel()

		if err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		app.configForwarder(ctx)

		return nil
	})

	return group.Wait()
}

// configForwarder sends reloaded configs to the ui.
func (app *App) configForwarder(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded", slog.Int("sliders", len(conf.Sliders)))
			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, loader ui.ConfigWriter) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			app.restored,
			BuildVersion,
			BuildDate,
			BuildCommit,
			loader,
			app.recorder)
	}

	return app.ui
}
