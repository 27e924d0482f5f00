package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DumpConfig holds configuration for the dump command.
type DumpConfig struct {
	Endpoint       string
	RequestTimeout time.Duration
	Tables         []string
	LogLevel       string
}

// LoadDump merges config file, environment variables, and flags into DumpConfig.
func LoadDump(cfgFile string, flags *pflag.FlagSet) (DumpConfig, error) {
	v, err := newViper(cfgFile, flags, nil)
	if err != nil {
		return DumpConfig{}, err
	}

	cfg := DumpConfig{
		Endpoint:       v.GetString("endpoint"),
		RequestTimeout: v.GetDuration("request-timeout"),
		Tables:         getStringSlice(v, "tables"),
		LogLevel:       v.GetString("log-level"),
	}
	return cfg, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	return cleanStrings(strings.Split(input, ","))
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
