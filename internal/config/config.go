package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wehlutyk/kakoune/internal/app"
)

// Config captures runtime configuration for the application.
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
	envSession     = "KAKOUNE_SESSION"
	envClient      = "KAKOUNE_CLIENT"
	envAutoreload  = "KAKOUNE_AUTORELOAD"
	envModelineFmt = "KAKOUNE_MODELINEFMT"
	envTabstop     = "KAKOUNE_TABSTOP"
	envTrace       = "KAKOUNE_TRACE"
	envLogFile     = "KAKOUNE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Positional
// arguments are the files to open.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("kak", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	session := fs.String("session", envOrDefault(env, envSession, "default"), "session name shown in the mode line")
	clientName := fs.String("client", envOrDefault(env, envClient, "client0"), "client name shown in the mode line")
	autoreload := fs.String("autoreload", envOrDefault(env, envAutoreload, "ask"), "external-change policy: yes, no or ask")
	modelinefmt := fs.String("modelinefmt", envOrDefault(env, envModelineFmt, ""), "mode line format, %val{...} placeholders allowed")
	tabstop := fs.Int("tabstop", envOrInt(env, envTabstop, 8), "columns per tab")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Session:     *session,
			ClientName:  *clientName,
			Files:       append([]string(nil), fs.Args()...),
			Autoreload:  *autoreload,
			ModelineFmt: *modelinefmt,
			Tabstop:     *tabstop,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"session":     *session,
			"client":      *clientName,
			"autoreload":  *autoreload,
			"modelinefmt": *modelinefmt,
			"tabstop":     strconv.Itoa(*tabstop),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	switch cfg.App.Autoreload {
	case "yes", "no", "ask":
	default:
		return fmt.Errorf("autoreload must be yes, no or ask (got %q)", cfg.App.Autoreload)
	}
	if cfg.App.Tabstop < 1 {
		return fmt.Errorf("tabstop must be >= 1 (got %d)", cfg.App.Tabstop)
	}
	if cfg.App.Session == "" {
		return fmt.Errorf("session name must not be empty")
	}
	return nil
}
