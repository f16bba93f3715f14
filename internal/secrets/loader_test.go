package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromValue(t *testing.T) {
	got, err := Load(Source{Name: "api key", Value: "  inline-secret  "})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "inline-secret" {
		t.Fatalf("expected trimmed inline value, got %q", got)
	}
}

func TestLoadFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := Load(Source{Name: "api key", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("file must take precedence over inline value, got %q", got)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("REJECTLENS_TEST_SECRET", "  from-env ")

	got, err := Load(Source{Name: "api key", Env: "REJECTLENS_TEST_SECRET"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env fallback, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatalf("expected an error when nothing is configured")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(Source{Name: "api key", File: empty}); err == nil {
		t.Fatalf("expected an error for an empty secret file")
	}

	if _, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatalf("expected an error for a missing secret file")
	}
}
