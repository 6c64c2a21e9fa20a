package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/dustin/go-humanize"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/replay"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/store"
	"github.com/leighmacdonald/slidertui/internal/ui"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	replayFollow   bool
	replaySlider   string
	historyLimit   int64
	rootCmd        = &cobra.Command{
		Use:   "slidertui",
		Short: "Terminal slider board",
		Long:  `slidertui - A board of mouse driven sliders for the terminal`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about slidertui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	replayCmd = &cobra.Command{
		Use:   "replay <script>",
		Short: "Run an event script against a headless slider",
		Long: `Feed a script of pointer events and property changes through one slider and print every
resulting effect. With --follow the script is tailed and lines appended later are applied as well.`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	historyCmd = &cobra.Command{
		Use:               "history <slider id>",
		Short:             "Show recorded value changes of a slider",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              runHistory,
	}

	resetCmd = &cobra.Command{
		Use:               "reset",
		Short:             "Forget all persisted slider state and history",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              runReset,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	replayCmd.Flags().BoolVarP(&replayFollow, "follow", "f", false, "Keep reading the script as it grows")
	replayCmd.Flags().StringVarP(&replaySlider, "slider", "s", "",
		"Use the options of this configured slider instead of the pixel defaults")
	historyCmd.Flags().Int64VarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(versionCmd, replayCmd, historyCmd, resetCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("slidertui - Terminal slider board\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)         //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)          //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)            //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)     //nolint:forbidigo
}

func readConfig(updates chan config.Config) (*config.Loader, config.Config, error) {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	loader := config.NewLoader(updates)
	loader.UseFile(cfgFile)

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, errors.Join(errConfig, errApp)
	}

	return loader, userConfig, nil
}

// run is the main entry point of slidertui.
func run(cmd *cobra.Command, _ []string) error {
	configUpdates := make(chan config.Config)

	loader, userConfig, errConfig := readConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting slidertui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	var (
		recorder ui.StateRecorder
		restored map[string]pages.Restored
	)

	if userConfig.Persist {
		database, errDB := store.Open(cmd.Context(), userConfig.DatabaseFile(), true)
		if errDB != nil {
			return errors.Join(errDB, errApp)
		}

		defer closeDatabase(database)

		states, errRestored := loadRestored(cmd.Context(), database)
		if errRestored != nil {
			return errors.Join(errRestored, errApp)
		}

		recorder = newStateRecorder(database)
		restored = states
	}

	loader.Watch()

	return NewApp(userConfig, recorder, restored, configUpdates).Start(cmd.Context(), loader)
}

func runReplay(cmd *cobra.Command, args []string) error {
	opts := slider.DefaultOptions()

	if replaySlider != "" {
		_, userConfig, errConfig := readConfig(nil)
		if errConfig != nil {
			return errConfig
		}

		found := false

		for _, sliderConf := range userConfig.Sliders {
			if sliderConf.ID == replaySlider {
				opts = userConfig.Options(sliderConf)
				found = true

				break
			}
		}

		if !found {
			return errors.Join(fmt.Errorf("unknown slider %q", replaySlider), errApp)
		}
	}

	config.LoggerStderr(slog.LevelWarn)

	runner := replay.NewRunner(opts, cmd.OutOrStdout())
	if err := replay.Run(cmd.Context(), args[0], replayFollow, runner); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	config.LoggerStderr(slog.LevelWarn)

	database, errDB := store.Open(cmd.Context(), userConfig.DatabaseFile(), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer closeDatabase(database)

	return printHistory(cmd.Context(), cmd.OutOrStdout(), store.New(database), args[0], historyLimit)
}

func runReset(cmd *cobra.Command, _ []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	config.LoggerStderr(slog.LevelWarn)

	databasePath := userConfig.DatabaseFile()

	database, errDB := store.Open(cmd.Context(), databasePath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer closeDatabase(database)

	if err := store.Reset(database); err != nil {
		return errors.Join(err, errApp)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", databasePath)

	return err
}

func printHistory(ctx context.Context, out io.Writer, queries *store.Queries, sliderID string, limit int64) error {
	entries, errHistory := queries.ListHistory(ctx, sliderID, limit)
	if errHistory != nil {
		return errors.Join(errHistory, errApp)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "no history for %s\n", sliderID)

		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "%-16s %8s -> %-8s %s\n", entry.SliderID,
			humanize.Comma(entry.OldValue), humanize.Comma(entry.NewValue),
			humanize.Time(time.Unix(entry.CreatedOn, 0))); err != nil {
			return err
		}
	}

	return nil
}

func closeDatabase(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Error("Error closing database", slog.String("error", err.Error()))
	}
}
