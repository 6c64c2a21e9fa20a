package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/slidertui/internal/slider"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errLoggerInit    = errors.New("failed to initialize logger")
	ErrConfigInvalid = errors.New("invalid config")
)

const (
	ConfigDirName     = "slidertui"
	DefaultConfigName = "slidertui"
	DefaultDBName     = "slidertui.db"
	DefaultLogName    = "slidertui.log"
	EnvPrefix         = "slidertui"
)

type Config struct {
	Debug            bool `mapstructure:"debug"`
	FPS              int  `mapstructure:"fps"`
	RepeatDelayMs    int  `mapstructure:"repeat_delay_ms"`
	RepeatIntervalMs int  `mapstructure:"repeat_interval_ms"`
	AnimationMs      int  `mapstructure:"animation_ms"`
	HoverHalo        int  `mapstructure:"hover_halo"`
	PressedHalo      int  `mapstructure:"pressed_halo"`
	// Persist stores slider state in the sqlite database between runs.
	Persist      bool           `mapstructure:"persist"`
	DatabasePath string         `mapstructure:"database_path"`
	Sliders      []SliderConfig `mapstructure:"sliders"`
}

// SliderConfig describes one slider on the board. Id keys its persisted state.
type SliderConfig struct {
	ID           string `mapstructure:"id"`
	Label        string `mapstructure:"label"`
	Minimum      int    `mapstructure:"minimum"`
	Maximum      int    `mapstructure:"maximum"`
	Value        int    `mapstructure:"value"`
	SingleStep   int    `mapstructure:"single_step"`
	PageStep     int    `mapstructure:"page_step"`
	PageStepMode bool   `mapstructure:"page_step_mode"`
	Tracking     bool   `mapstructure:"tracking"`
	Inverted     bool   `mapstructure:"inverted"`
	Orientation  string `mapstructure:"orientation"`
	TrackWidth   int    `mapstructure:"track_width"`
	// Length is the widget extent along the track in cells, margins included.
	Length int `mapstructure:"length"`
}

// settings is the config file form, keyed like the mapstructure tags.
func (sc SliderConfig) settings() map[string]any {
	return map[string]any{
		"id":             sc.ID,
		"label":          sc.Label,
		"minimum":        sc.Minimum,
		"maximum":        sc.Maximum,
		"value":          sc.Value,
		"single_step":    sc.SingleStep,
		"page_step":      sc.PageStep,
		"page_step_mode": sc.PageStepMode,
		"tracking":       sc.Tracking,
		"inverted":       sc.Inverted,
		"orientation":    sc.Orientation,
		"track_width":    sc.TrackWidth,
		"length":         sc.Length,
	}
}

func (c Config) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMs) * time.Millisecond
}

func (c Config) RepeatInterval() time.Duration {
	return time.Duration(c.RepeatIntervalMs) * time.Millisecond
}

func (c Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationMs) * time.Millisecond
}

// FrameInterval is the animation tick period derived from fps.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}

	return time.Second / time.Duration(c.FPS)
}

// DatabaseFile resolves a relative database path under the config dir.
func (c Config) DatabaseFile() string {
	name := c.DatabasePath
	if name == "" {
		name = DefaultDBName
	}

	if filepath.IsAbs(name) {
		return name
	}

	return Path(name)
}

func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (c Config) Validate() error {
	if len(c.Sliders) == 0 {
		return errors.Join(errors.New("no sliders defined"), ErrConfigInvalid)
	}

	seen := map[string]bool{}

	for idx, sc := range c.Sliders {
		if sc.ID == "" {
			return errors.Join(fmt.Errorf("slider %d has no id", idx), ErrConfigInvalid)
		}

		if seen[sc.ID] {
			return errors.Join(fmt.Errorf("duplicate slider id %q", sc.ID), ErrConfigInvalid)
		}

		seen[sc.ID] = true
	}

	return nil
}

// Options converts the slider config into core options using cell metrics. The cross axis is
// always three cells.
func (c Config) Options(sc SliderConfig) slider.Options {
	opts := slider.DefaultOptions()
	opts.Minimum = sc.Minimum
	opts.Maximum = sc.Maximum
	opts.Value = sc.Value
	opts.SingleStep = sc.SingleStep
	opts.PageStep = sc.PageStep
	opts.PageStepMode = sc.PageStepMode
	opts.Tracking = sc.Tracking
	opts.Inverted = sc.Inverted
	opts.Orientation = slider.ParseOrientation(sc.Orientation)
	opts.TrackWidth = max(1, sc.TrackWidth)
	opts.Metrics = slider.CellMetrics
	opts.RepeatDelay = c.RepeatDelay()
	opts.RepeatInterval = c.RepeatInterval()

	minimum := slider.Geometry{Metrics: opts.Metrics}.MinimumSize()
	length := max(sc.Length, minimum.X)

	if opts.Orientation == slider.Vertical {
		opts.Size.X, opts.Size.Y = minimum.Y, length
	} else {
		opts.Size.X, opts.Size.Y = length, minimum.Y
	}

	return opts
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})))

	return logFile, nil
}

// LoggerStderr is used by the headless commands which own the terminal output.
func LoggerStderr(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
