package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fstkit/fstkit/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "fstkit"

// Cache backend names accepted in the config file and --cache flag.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// Config is the on-disk configuration, read from a TOML file.
type Config struct {
	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"`    // file (default), redis, mongo, none
	Dir       string   `toml:"dir"`        // file backend: cache directory
	RedisAddr string   `toml:"redis_addr"` // redis backend: host:port
	MongoURI  string   `toml:"mongo_uri"`  // mongo backend: connection string
	MongoDB   string   `toml:"mongo_db"`
	TTL       duration `toml:"ttl"` // entry lifetime, e.g. "168h"; zero means no expiry
}

// duration lets TOML values like ttl = "24h" decode into a time.Duration.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

func (d duration) std() time.Duration {
	return time.Duration(d)
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   backendFile,
			RedisAddr: "localhost:6379",
			MongoDB:   appName,
		},
	}
}

// configPath returns the default config file location,
// typically ~/.config/fstkit/config.toml.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = backendFile
	}
	return cfg, nil
}

// cacheDir returns the directory used by the file cache backend.
func cacheDir(cfg CacheConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// openCache builds the cache backend selected by the configuration.
// The caller owns the returned cache and must Close it.
func openCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendFile, "":
		dir, err := cacheDir(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	case backendRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	case backendMongo:
		db := cfg.MongoDB
		if db == "" {
			db = appName
		}
		return cache.NewMongoCache(ctx, cfg.MongoURI, db, "results")
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be 'file', 'redis', 'mongo', or 'none')", cfg.Backend)
	}
}
