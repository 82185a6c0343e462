package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/titoTito21/titan-menu/internal/app"
)

// Config captures runtime configuration for the launcher.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSettings  = "TITAN_MENU_SETTINGS"
	envLabel     = "TITAN_MENU_LABEL"
	envHistoryDB = "TITAN_MENU_HISTORY_DB"
	envTrace     = "TITAN_MENU_TRACE"
	envLogFile   = "TITAN_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("titan-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	settingsPath := fs.String("settings", envOrDefault(env, envSettings, ""), "path to the settings file (defaults to the user config directory)")
	label := fs.String("label", envOrDefault(env, envLabel, "Main menu"), "spoken label announced when the menu opens")
	historyDB := fs.String("history-db", envOrDefault(env, envHistoryDB, ""), "path to the launch history database (empty disables history)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(*label) == "" {
		return Config{}, fmt.Errorf("label must not be empty")
	}

	cfg := Config{
		App: app.Config{
			SettingsPath: *settingsPath,
			MenuLabel:    *label,
			HistoryDB:    *historyDB,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"settings":  *settingsPath,
			"label":     *label,
			"historyDB": *historyDB,
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
