package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/lidkit/pkg/cache"
	"github.com/matzehuels/lidkit/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	cfg, warnings, err := Parse(`
[log]
level = "debug"

[cache]
backend = "none"

[server]
addr = ":9000"

[render]
planes = [0, 90]
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Parse() warnings = %v, want none", warnings)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadMB != 16 {
		t.Errorf("Server.MaxUploadMB = %d, want default 16", cfg.Server.MaxUploadMB)
	}
	if len(cfg.Render.Planes) != 2 {
		t.Errorf("Render.Planes = %v, want [0 90]", cfg.Render.Planes)
	}
}

func TestParseUnknownKeysWarn(t *testing.T) {
	_, warnings, err := Parse("[cache]\nbackend = \"file\"\nttl = \"1h\"\n[extra]\nx = 1\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(warnings) < 2 {
		t.Fatalf("warnings = %v, want cache.ttl and extra.x", warnings)
	}
	if !strings.Contains(strings.Join(warnings, " "), "cache.ttl") {
		t.Errorf("warnings = %v, want cache.ttl mentioned", warnings)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad toml", "[log\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n[cache.redis]\naddr = \"\"\n"},
		{"zero upload", "[server]\nmax_upload_mb = 0\n"},
		{"negative width", "[render]\nwidth = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.text)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Parse() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "none.toml")

	cfg, _, err := Load(missing, true)
	if err != nil {
		t.Fatalf("Load(optional missing) error = %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}

	if _, _, err := Load(missing, false); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Load(required missing) error = %v, want IO_ERROR", err)
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[catalog]\npath = \"/tmp/c.db\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, err := cfg.Catalog.CatalogPath()
	if err != nil || got != "/tmp/c.db" {
		t.Errorf("CatalogPath() = %q, %v; want /tmp/c.db", got, err)
	}
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	c, err := CacheConfig{Backend: BackendNone}.OpenCache(ctx)
	if err != nil {
		t.Fatalf("OpenCache(none) error = %v", err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("OpenCache(none) = %T, want NullCache", c)
	}

	dir := filepath.Join(t.TempDir(), "cache")
	c, err = CacheConfig{Backend: BackendFile, Dir: dir}.OpenCache(ctx)
	if err != nil {
		t.Fatalf("OpenCache(file) error = %v", err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok || fc.Dir() != dir {
		t.Errorf("OpenCache(file) = %T, want FileCache at %s", c, dir)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct{ in, want string }{
		{"~/x", filepath.Join(home, "x")},
		{"~", home},
		{"/abs", "/abs"},
		{"rel/~", "rel/~"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("expandHome(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
