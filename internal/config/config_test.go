package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// original working directory on cleanup. Equivalent to t.Chdir, which is
// unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Catalog.Source != "file" {
		t.Errorf("expected catalog source file, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Path != filepath.Join("data", "medications.json") {
		t.Errorf("unexpected catalog path %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Redis.Key != "rxdex:catalog" {
		t.Errorf("unexpected redis key %q", cfg.Catalog.Redis.Key)
	}
	if cfg.Search.FuzzyRatio != 0.2 {
		t.Errorf("expected FuzzyRatio=0.2, got %g", cfg.Search.FuzzyRatio)
	}
	if cfg.Search.DefaultPageSize != 10 {
		t.Errorf("expected DefaultPageSize=10, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing port")
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Catalog: CatalogConfig{Source: "s3"}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown catalog source")
	}
}

func TestValidate_RedisSourceRequiresAddrs(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Catalog: CatalogConfig{Source: "redis"}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for redis source without addrs")
	}
}

func TestValidate_FuzzyRatioBound(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Search: SearchConfig{FuzzyRatio: 1.5}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fuzzy ratio above 1")
	}
}

func TestValidate_NegativeFieldWeight(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{FieldWeights: map[string]float64{"brand_name": -1}},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative field weight")
	}
}

func TestValidate_DefaultPageSizeAboveMax(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{DefaultPageSize: 200, MaxPageSize: 100},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for default page size above max")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}

	raw := `
http:
  port: ${TEST_RXDEX_PORT:-9090}
catalog:
  source: file
  path: ${TEST_RXDEX_CATALOG:-data/medications.json}
`
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	chdir(t, dir)
	t.Setenv("TEST_RXDEX_CATALOG", "snapshots/meds.json")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d, want the 9090 default expansion", cfg.HTTP.Port)
	}
	if cfg.Catalog.Path != "snapshots/meds.json" {
		t.Errorf("path = %q, want the env override", cfg.Catalog.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
