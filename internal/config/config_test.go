package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// Isolate from the ambient environment. Setting the keys (even to
	// empty) also stops godotenv from filling them in from a stray
	// .env file, since it never overrides existing variables.
	t.Setenv("KATALOG_ADDR", "")
	t.Setenv("KATALOG_DB", "")
	t.Setenv("KATALOG_ENV", "")

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.DBPath != "katalog.sqlite3" {
		t.Errorf("expected default db path 'katalog.sqlite3', got %q", cfg.DBPath)
	}
	if cfg.Development() {
		t.Error("expected production mode by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("KATALOG_ADDR", ":9999")
	t.Setenv("KATALOG_DB", "/tmp/test.sqlite3")
	t.Setenv("KATALOG_ENV", "development")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Errorf("expected addr ':9999', got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/test.sqlite3" {
		t.Errorf("expected db path '/tmp/test.sqlite3', got %q", cfg.DBPath)
	}
	if !cfg.Development() {
		t.Error("expected development mode")
	}
}
