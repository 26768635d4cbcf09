// Package config loads the lidkit TOML configuration file.
//
// The file is optional. Missing keys keep their defaults, and keys the
// loader does not know are returned as warnings rather than errors so an
// older binary can read a newer file.
//
//	[log]
//	level = "info"
//
//	[cache]
//	backend = "file"          # file, redis or none
//	dir = "~/.cache/lidkit"
//
//	[cache.redis]
//	addr = "localhost:6379"
//	db = 0
//	prefix = "lidkit:"
//
//	[catalog]
//	path = "~/.local/share/lidkit/catalog.db"
//
//	[server]
//	addr = ":8080"
//	max_upload_mb = 16
//
//	[render]
//	width = 800
//	height = 800
//	planes = [0, 90, 180, 270]
package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lidkit/pkg/cache"
	"github.com/matzehuels/lidkit/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the whole configuration file.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Cache   CacheConfig   `toml:"cache"`
	Catalog CatalogConfig `toml:"catalog"`
	Server  ServerConfig  `toml:"server"`
	Render  RenderConfig  `toml:"render"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

type ServerConfig struct {
	Addr        string `toml:"addr"`
	MaxUploadMB int    `toml:"max_upload_mb"`
}

type RenderConfig struct {
	Width  int       `toml:"width"`
	Height int       `toml:"height"`
	Planes []float64 `toml:"planes"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Cache:   CacheConfig{Backend: BackendFile, Redis: RedisConfig{Addr: "localhost:6379", Prefix: "lidkit:"}},
		Catalog: CatalogConfig{},
		Server:  ServerConfig{Addr: ":8080", MaxUploadMB: 16},
		Render:  RenderConfig{Width: 800, Height: 800},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lidkit/config.toml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "locate user config dir")
	}
	return filepath.Join(dir, "lidkit", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true. The returned warnings name keys that were ignored.
func Load(path string, optional bool) (*Config, []string, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil, nil
		}
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	warnings, err := cfg.decode(string(data))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (*Config, []string, error) {
	cfg := Default()
	warnings, err := cfg.decode(text)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

func (c *Config) decode(text string) ([]string, error) {
	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, err
	}
	var warnings []string
	for _, k := range md.Undecoded() {
		warnings = append(warnings, "unknown config key "+k.String())
	}
	return warnings, nil
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend %q must be file, redis or none", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis.addr is required for the redis backend")
	}
	if c.Server.MaxUploadMB <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_upload_mb must be positive")
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render width and height must not be negative")
	}
	return nil
}

// OpenCache builds the configured cache backend.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := c.CacheDir()
	if err != nil {
		return nil, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// CacheDir returns the file cache directory, expanding a leading ~.
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return expandHome(c.Dir)
	}
	return cache.DefaultDir()
}

// CatalogPath returns the catalog database path, defaulting to
// catalog.db beside the config file.
func (c CatalogConfig) CatalogPath() (string, error) {
	if c.Path != "" {
		return expandHome(c.Path)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "locate user config dir")
	}
	return filepath.Join(dir, "lidkit", "catalog.db"), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "expand %s", p)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
