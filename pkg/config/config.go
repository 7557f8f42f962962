package config

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "./config.yaml"
)

// Config is loaded from defaults, then an optional YAML file, then the
// environment. Environment variables are the upper-case form of the koanf
// keys (base_url -> BASE_URL).
type Config struct {
	BaseURL       string `koanf:"base_url" default:"https://annas-archive.org" validate:"required,http_url"`
	LibgenBaseURL string `koanf:"libgen_base_url" default:"http://libgen.li" validate:"required,http_url"`
	IPFSGateway   string `koanf:"ipfs_gateway" default:"https://gateway.ipfs.io/ipfs" validate:"required,http_url"`
	UserAgent     string `koanf:"user_agent" default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" validate:"required"`

	RequestTimeout  time.Duration `koanf:"request_timeout" default:"30s"`
	RequestInterval time.Duration `koanf:"request_interval" default:"500ms"`
	SearchLimit     int           `koanf:"search_limit" validate:"min=0"`

	// An empty DatabaseFilePath disables the page cache.
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5" validate:"min=1"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	CacheTTL                  time.Duration `koanf:"cache_ttl" default:"1h"`

	ServerHost string `koanf:"server_host" default:"0.0.0.0"`
	ServerPort int    `koanf:"server_port" default:"3690" validate:"min=0,max=65535"`
}

// New loads the configuration.
func New() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WithStack(err)
	}

	keys := koanfKeys()
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := keys[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config from environment")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a configuration without a page cache or rate limiting.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.RequestInterval = 0
	cfg.RequestTimeout = 5 * time.Second
	cfg.ServerHost = "127.0.0.1"
	return cfg
}

// CacheEnabled reports whether fetched pages should be cached in SQLite.
func (cfg *Config) CacheEnabled() bool {
	return cfg.DatabaseFilePath != ""
}

func (cfg *Config) validate() error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return cfg.validateDurations()
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.WithStack(err)
	}

	fe := verrs[0]
	key := koanfKey(fe.StructField())
	if fe.Tag() == "required" {
		return errors.Errorf("missing required config: set %s or %s in the config file", strings.ToUpper(key), key)
	}
	return errors.Errorf("invalid config %s (%s): %q failed %s validation", strings.ToUpper(key), key, fmt.Sprint(fe.Value()), fe.Tag())
}

func (cfg *Config) validateDurations() error {
	durations := map[string]time.Duration{
		"request_timeout": cfg.RequestTimeout,
		"cache_ttl":       cfg.CacheTTL,
	}
	for key, d := range durations {
		if d <= 0 {
			return errors.Errorf("invalid config %s (%s): must be a positive duration", strings.ToUpper(key), key)
		}
	}
	if cfg.RequestInterval < 0 {
		return errors.New("invalid config REQUEST_INTERVAL (request_interval): must not be negative")
	}
	return nil
}

// koanfKeys returns the set of keys the Config struct understands.
func koanfKeys() map[string]struct{} {
	keys := map[string]struct{}{}
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("koanf"); key != "" {
			keys[key] = struct{}{}
		}
	}
	return keys
}

func koanfKey(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	return f.Tag.Get("koanf")
}
