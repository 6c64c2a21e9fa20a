package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// ConfigWriter persists the config file, used by the save binding.
type ConfigWriter interface {
	Path() string
	Write(config config.Config) error
}

// StateRecorder stores committed slider changes.
type StateRecorder interface {
	Record(ctx context.Context, state command.SliderState) error
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, restored map[string]pages.Restored,
	buildVersion string, buildDate string, buildCommit string, loader ConfigWriter, recorder StateRecorder,
) *UI {
	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, userConfig, restored, buildVersion, buildDate, buildCommit, loader, recorder),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(max(1, userConfig.FPS))),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

// Send delivers msg from outside the program, a reloaded config.Config for example.
func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
