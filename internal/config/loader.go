package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", 60)
	loader.SetDefault("repeat_delay_ms", 500)
	loader.SetDefault("repeat_interval_ms", 50)
	loader.SetDefault("animation_ms", 150)
	loader.SetDefault("hover_halo", 2)
	loader.SetDefault("pressed_halo", 4)
	loader.SetDefault("persist", true)
	loader.SetDefault("database_path", DefaultDBName)
	loader.SetDefault("sliders", []map[string]any{
		{
			"id":             "volume",
			"label":          "Volume",
			"minimum":        0,
			"maximum":        100,
			"value":          35,
			"page_step":      10,
			"page_step_mode": true,
			"length":         42,
		},
		{
			"id":             "balance",
			"label":          "Balance",
			"minimum":        -50,
			"maximum":        50,
			"page_step_mode": false,
			"tracking":       true,
			"length":         42,
		},
		{
			"id":             "zoom",
			"label":          "Zoom",
			"minimum":        1,
			"maximum":        16,
			"value":          4,
			"page_step":      2,
			"page_step_mode": true,
			"inverted":       true,
			"orientation":    "vertical",
			"length":         12,
		},
	})
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// Watch starts forwarding external edits of the config file to the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

// UseFile reads from path instead of searching the config paths.
func (cl *Loader) UseFile(path string) {
	if path != "" {
		cl.SetConfigFile(path)
	}
}

// Path is the config file in use, or the location Write would create one.
func (cl *Loader) Path() string {
	if used := cl.ConfigFileUsed(); used != "" {
		return used
	}

	return Path(DefaultConfigName + ".yaml")
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)
	cl.Set("repeat_delay_ms", config.RepeatDelayMs)
	cl.Set("repeat_interval_ms", config.RepeatIntervalMs)
	cl.Set("animation_ms", config.AnimationMs)
	cl.Set("hover_halo", config.HoverHalo)
	cl.Set("pressed_halo", config.PressedHalo)
	cl.Set("persist", config.Persist)
	cl.Set("database_path", config.DatabasePath)

	sliders := make([]map[string]any, 0, len(config.Sliders))
	for _, sc := range config.Sliders {
		sliders = append(sliders, sc.settings())
	}

	cl.Set("sliders", sliders)

	if cl.ConfigFileUsed() == "" {
		if err := cl.WriteConfigAs(Path(DefaultConfigName + ".yaml")); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if there is one. A missing file is not an error, defaults apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
