// jumper is a terminal platformer: run and jump through lava-filled levels,
// collect every coin, and reach the end of the pack.
//
// Usage:
//
//	jumper list                  - List level packs
//	jumper play [pack]           - Play a pack (default: classic)
//	jumper menu                  - Pick packs interactively
//	jumper serve                 - Start SSH server for remote play
//	jumper records [pack]        - Show the best runs
//	jumper show <pack> <level>   - Print a level as text
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Seed for cosmetic randomness
//	--db <path>           - Runs database (default: ~/.jumper/runs.db)
//	--config <path>       - Game tuning YAML
//	--levels <dir>        - Directory of extra level packs
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//
// Flags left unset fall back to JUMPER_* environment variables, which may
// also come from a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/levels"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagLogFile  string
	flagLogLevel string

	// Shared by play, menu and serve
	flagDifficulty string
)

// envFlags maps persistent flags to the variables that override their defaults.
var envFlags = map[string]string{
	"db":        "JUMPER_DB",
	"config":    "JUMPER_CONFIG",
	"levels":    "JUMPER_LEVELS",
	"log-level": "JUMPER_LOG_LEVEL",
	"log-file":  "JUMPER_LOG_FILE",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - a platformer in your terminal",
	Long: `Jumper is a terminal platformer. Run and jump through each level,
dodge the lava and collect every coin to move on.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack picker
  serve    - Start SSH server for remote play
  records  - View the best runs
  show     - Print a level as text

Examples:
  jumper play
  jumper play classic --level 3
  jumper menu --levels ./packs
  jumper serve --ssh :2222
  jumper records classic --plain`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Seed for cosmetic randomness (0 = time based)")
	pf.StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLevels, "levels", "", "Directory of extra level pack files")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(showCmd)
}

// setup loads .env, applies environment overrides and registers extra packs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(cmd); err != nil {
		return err
	}
	return registerLevels()
}

// applyEnv sets every flag the user did not pass from its JUMPER_* variable.
func applyEnv(cmd *cobra.Command) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// registerLevels adds the packs found under --levels. Broken files are
// reported and skipped.
func registerLevels() error {
	if flagLevels == "" {
		return nil
	}

	loader := levels.NewLoader(flagLevels)
	ids, err := loader.RegisterAll()
	if err != nil {
		return fmt.Errorf("loading level packs: %w", err)
	}
	for _, skipped := range loader.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", skipped)
	}
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no level packs found in %s\n", flagLevels)
	}
	return nil
}

// newLogger builds the logger for a command. Without --log-file, output goes
// to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig reads the game tuning and applies the difficulty preset.
func loadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyJumperPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the runs database. Failure is a warning: the game still
// works without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName names local runs after the OS user.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
