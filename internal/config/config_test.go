package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"HTTP_ADDR", "GAME_SAVE_FILE", "GAME_TEMPLATE_FILE", "STATIC_DIR",
		"STORE_BACKEND", "POSTGRES_DSN", "CORS_ORIGINS", "PUBLIC_URL",
		"LOG_LEVEL", "LOG_FORMAT", "DEBUG",
	} {
		t.Setenv(name, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8000" || cfg.SavePath != "game.json" || cfg.TemplatePath != "default.game.json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StoreBackend != BackendFile || cfg.StaticDir != "static" || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("DEBUG", "yes")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.StoreBackend != BackendMemory || !cfg.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("GAME_SAVE_FILE")
	t.Cleanup(func() { os.Unsetenv("GAME_SAVE_FILE") })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GAME_SAVE_FILE=live.json\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SavePath != "live.json" {
		t.Fatalf("save path = %q, want live.json", cfg.SavePath)
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "redis")
	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}

	t.Setenv("STORE_BACKEND", "postgres")
	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatalf("expected an error for postgres without a dsn")
	}

	t.Setenv("POSTGRES_DSN", "postgres://localhost/douze")
	if _, err := Load(missingEnvFile(t)); err != nil {
		t.Fatalf("postgres with dsn: %v", err)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{"", true, true},
		{"off", true, false},
		{"ON", false, true},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Setenv("DOUZE_TEST_BOOL", tt.raw)
		if got := envBool("DOUZE_TEST_BOOL", tt.fallback); got != tt.want {
			t.Fatalf("envBool(%q, %t) = %t, want %t", tt.raw, tt.fallback, got, tt.want)
		}
	}
}
