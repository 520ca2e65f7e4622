package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"category-admin/internal/app"
	"github.com/joho/godotenv"
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
	envAPIBaseURL   = "CATEGORY_ADMIN_API_URL"
	envChatID       = "CATEGORY_ADMIN_CHAT_ID"
	envLocation     = "CATEGORY_ADMIN_LOCATION"
	envLocationFile = "CATEGORY_ADMIN_LOCATION_FILE"
	envPollInterval = "CATEGORY_ADMIN_POLL_INTERVAL"
	envWidth        = "CATEGORY_ADMIN_WIDTH"
	envHeight       = "CATEGORY_ADMIN_HEIGHT"
	envShowFooter   = "CATEGORY_ADMIN_FOOTER"
	envVerbose      = "CATEGORY_ADMIN_VERBOSE"
	envTheme        = "CATEGORY_ADMIN_THEME"
	envTrace        = "CATEGORY_ADMIN_TRACE"
	envLogFile      = "CATEGORY_ADMIN_LOG_FILE"
)

// defaultChatID mirrors the identifier the hosted panel falls back to
// when the location carries none.
const defaultChatID = "7882316826"

const defaultPollInterval = 1500 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
// A .env file in the working directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("category-admin", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiURL := fs.String("api-url", envOrDefault(env, envAPIBaseURL, ""), "base URL of the category backend, e.g. https://example.com/api")
	chatID := fs.String("chat-id", envOrDefault(env, envChatID, defaultChatID), "default chat identifier adopted when the location carries none")
	location := fs.String("location", envOrDefault(env, envLocation, ""), "initial panel location, a path or URL carrying /chatId=<id>")
	locationFile := fs.String("location-file", envOrDefault(env, envLocationFile, ""), "file to poll for location changes (empty disables following)")
	poll := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, defaultPollInterval), "interval between location file polls")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	themeName := fs.String("theme", envOrDefault(env, envTheme, "light"), "colour scheme: light or dark")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			APIBaseURL:    *apiURL,
			DefaultChatID: *chatID,
			Location:      *location,
			LocationFile:  *locationFile,
			PollInterval:  *poll,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			Theme:         *themeName,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"apiUrl":       *apiURL,
			"chatId":       *chatID,
			"location":     *location,
			"locationFile": *locationFile,
			"pollInterval": poll.String(),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"theme":        *themeName,
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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
	base := strings.TrimSpace(cfg.App.APIBaseURL)
	if base == "" {
		return fmt.Errorf("api-url is required (set -api-url or %s)", envAPIBaseURL)
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api-url %q is not an absolute URL", base)
	}
	id := strings.TrimSpace(cfg.App.DefaultChatID)
	if id == "" {
		return fmt.Errorf("chat-id must not be empty")
	}
	if strings.ContainsAny(id, "/&") {
		return fmt.Errorf("chat-id %q must not contain '/' or '&'", id)
	}
	switch cfg.App.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("theme %q must be light or dark", cfg.App.Theme)
	}
	if cfg.App.LocationFile != "" && cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive when a location file is set")
	}
	return nil
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
