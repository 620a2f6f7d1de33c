package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config is the process configuration, read once at start-up.
type Config struct {
	Addr         string
	SavePath     string
	TemplatePath string
	StaticDir    string
	StoreBackend string
	PostgresDSN  string
	CORSOrigins  []string
	PublicURL    string
	LogLevel     string
	LogFormat    string
	Debug        bool
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "loading %s", file)
		}
	}

	cfg := Config{
		Addr:         envString("HTTP_ADDR", ":8000"),
		SavePath:     envString("GAME_SAVE_FILE", "game.json"),
		TemplatePath: envString("GAME_TEMPLATE_FILE", "default.game.json"),
		StaticDir:    envString("STATIC_DIR", "static"),
		StoreBackend: strings.ToLower(envString("STORE_BACKEND", BackendFile)),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		CORSOrigins:  envList("CORS_ORIGINS", []string{"*"}),
		PublicURL:    envString("PUBLIC_URL", "http://localhost:8000/static/index.html"),
		LogLevel:     envString("LOG_LEVEL", "info"),
		LogFormat:    envString("LOG_FORMAT", "text"),
		Debug:        envBool("DEBUG", false),
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendMemory:
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, errors.New("POSTGRES_DSN is required for the postgres store backend")
		}
	default:
		return Config{}, errors.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func envString(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envList(name string, fallback []string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(name), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
