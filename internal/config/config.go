package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"subgraphScope/internal/explorer"
	"subgraphScope/internal/paginate"
	"subgraphScope/internal/subgraph"
)

// Config holds configuration values for the serve command.
type Config struct {
	Endpoint        string
	Explorer        string
	Listen          string
	PageSize        int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("explorer", explorer.DefaultBaseURL)
		v.SetDefault("listen", ":8080")
		v.SetDefault("page-size", paginate.DefaultPageSize)
		v.SetDefault("shutdown-timeout", 10*time.Second)
	})
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Endpoint:        v.GetString("endpoint"),
		Explorer:        v.GetString("explorer"),
		Listen:          v.GetString("listen"),
		PageSize:        v.GetInt("page-size"),
		RequestTimeout:  v.GetDuration("request-timeout"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		LogLevel:        v.GetString("log-level"),
	}

	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("page size must be greater than zero")
	}
	return cfg, nil
}

// newViper applies the settings shared by every command: the DASHBOARD
// env prefix, common defaults, bound flags, and an optional config file.
func newViper(cfgFile string, flags *pflag.FlagSet, defaults func(*viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint", subgraph.DefaultEndpoint)
	v.SetDefault("request-timeout", 30*time.Second)
	v.SetDefault("log-level", "info")
	if defaults != nil {
		defaults(v)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
