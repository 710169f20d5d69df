package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. QUICKSTOCKS_IEX_TOKEN.
const EnvPrefix = "QUICKSTOCKS"

type Server struct {
	Port              string `mapstructure:"port" json:"port" validate:"required,numeric"`
	RequestTimeoutSec int    `mapstructure:"request_timeout_sec" json:"request_timeout_sec" validate:"gte=1"`
	EnableAdmin       bool   `mapstructure:"enable_admin" json:"enable_admin"`
}

type IEX struct {
	Token      string `mapstructure:"token" json:"token"`
	BaseURL    string `mapstructure:"base_url" json:"base_url" validate:"omitempty,url"`
	TimeoutSec int    `mapstructure:"timeout_sec" json:"timeout_sec" validate:"gte=1"`
}

type Finnhub struct {
	// SecondaryQuotes fills fields missing from IEX quotes with Finnhub's.
	SecondaryQuotes bool   `mapstructure:"secondary_quotes" json:"secondary_quotes"`
	Token           string `mapstructure:"token" json:"token"`
	BaseURL         string `mapstructure:"base_url" json:"base_url" validate:"omitempty,url"`
	TimeoutSec      int    `mapstructure:"timeout_sec" json:"timeout_sec" validate:"gte=1"`
}

// Throttle applies to each upstream API separately.
type Throttle struct {
	MaxPerSecond float64 `mapstructure:"max_per_second" json:"max_per_second" validate:"gt=0"`
	Burst        int     `mapstructure:"burst" json:"burst" validate:"gte=1"`
}

type Cache struct {
	QuoteTTLSec int `mapstructure:"quote_ttl_sec" json:"quote_ttl_sec" validate:"gte=1"`
	LogoTTLSec  int `mapstructure:"logo_ttl_sec" json:"logo_ttl_sec" validate:"gte=1"`
	MaxItems    int `mapstructure:"max_items" json:"max_items" validate:"gte=1"`
}

func (c Cache) QuoteTTL() time.Duration { return time.Duration(c.QuoteTTLSec) * time.Second }
func (c Cache) LogoTTL() time.Duration  { return time.Duration(c.LogoTTLSec) * time.Second }

type Retry struct {
	MaxRetries int `mapstructure:"max_retries" json:"max_retries" validate:"gte=0,lte=10"`
}

type Service struct {
	SingleFlight     bool `mapstructure:"single_flight" json:"single_flight"`
	BatchConcurrency int  `mapstructure:"batch_concurrency" json:"batch_concurrency" validate:"gte=1,lte=64"`
}

type Assets struct {
	Dir string `mapstructure:"dir" json:"dir"`
}

type Log struct {
	Level string `mapstructure:"level" json:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

type Config struct {
	Server   Server   `mapstructure:"server" json:"server"`
	IEX      IEX      `mapstructure:"iex" json:"iex"`
	Finnhub  Finnhub  `mapstructure:"finnhub" json:"finnhub"`
	Throttle Throttle `mapstructure:"throttle" json:"throttle"`
	Cache    Cache    `mapstructure:"cache" json:"cache"`
	Retry    Retry    `mapstructure:"retry" json:"retry"`
	Service  Service  `mapstructure:"service" json:"service"`
	Assets   Assets   `mapstructure:"assets" json:"assets"`
	Log      Log      `mapstructure:"log" json:"log"`
}

func Default() Config {
	return Config{
		Server:   Server{Port: "8080", RequestTimeoutSec: 10},
		IEX:      IEX{TimeoutSec: 10},
		Finnhub:  Finnhub{SecondaryQuotes: true, TimeoutSec: 10},
		Throttle: Throttle{MaxPerSecond: 5, Burst: 1},
		Cache:    Cache{QuoteTTLSec: 60, LogoTTLSec: 3600, MaxItems: 10 * 1024},
		Retry:    Retry{MaxRetries: 3},
		Service:  Service{BatchConcurrency: 4},
		Log:      Log{Level: "info"},
	}
}

// legacyEnv keeps the short variable names used by existing deployments.
var legacyEnv = map[string][]string{
	"server.port":                {"PORT"},
	"server.request_timeout_sec": {"REQUEST_TIMEOUT_SEC"},
	"iex.token":                  {"IEX_TOKEN"},
	"finnhub.token":              {"FINNHUB_TOKEN"},
	"log.level":                  {"LOG_LEVEL"},
}

// Load reads JSON config from path. If path is empty, ./config.json is used
// when present, otherwise defaults. QUICKSTOCKS_* environment variables
// override file values, with "." in keys replaced by "_".
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, env}, names...)...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation at once.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// setDefaults registers every key so that environment overrides apply even
// when the file omits a section.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.request_timeout_sec", d.Server.RequestTimeoutSec)
	v.SetDefault("server.enable_admin", d.Server.EnableAdmin)
	v.SetDefault("iex.token", d.IEX.Token)
	v.SetDefault("iex.base_url", d.IEX.BaseURL)
	v.SetDefault("iex.timeout_sec", d.IEX.TimeoutSec)
	v.SetDefault("finnhub.secondary_quotes", d.Finnhub.SecondaryQuotes)
	v.SetDefault("finnhub.token", d.Finnhub.Token)
	v.SetDefault("finnhub.base_url", d.Finnhub.BaseURL)
	v.SetDefault("finnhub.timeout_sec", d.Finnhub.TimeoutSec)
	v.SetDefault("throttle.max_per_second", d.Throttle.MaxPerSecond)
	v.SetDefault("throttle.burst", d.Throttle.Burst)
	v.SetDefault("cache.quote_ttl_sec", d.Cache.QuoteTTLSec)
	v.SetDefault("cache.logo_ttl_sec", d.Cache.LogoTTLSec)
	v.SetDefault("cache.max_items", d.Cache.MaxItems)
	v.SetDefault("retry.max_retries", d.Retry.MaxRetries)
	v.SetDefault("service.single_flight", d.Service.SingleFlight)
	v.SetDefault("service.batch_concurrency", d.Service.BatchConcurrency)
	v.SetDefault("assets.dir", d.Assets.Dir)
	v.SetDefault("log.level", d.Log.Level)
}
