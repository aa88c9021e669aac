// Package config loads logging configuration with viper and builds the
// sink tree and process-wide state it describes.
//
// A configuration file looks like:
//
//	global_level: info
//	coarse_clock: false
//	shared:
//	  type: multi
//	  level: all
//	  children:
//	    - name: console
//	      type: stderr
//	      level: warning
//	    - name: app
//	      type: file
//	      path: /var/log/app.log
//	      mode: rotate
//	      max_size_mb: 50
//
// Every key can be overridden from the environment with the SHAREDLOG_
// prefix, for example SHAREDLOG_GLOBAL_LEVEL=error or
// SHAREDLOG_SHARED_LEVEL=trace.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler/filehandler"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "SHAREDLOG"

// Sink types
const (
	TypeFile   = "file"
	TypeStderr = "stderr"
	TypeStdout = "stdout"
	TypeNull   = "null"
	TypeMulti  = "multi"
	TypeArray  = "array"
	TypeZap    = "zap"
)

// Config is the top-level logging configuration
type Config struct {
	// GlobalLevel is the process-wide threshold
	GlobalLevel core.Level `mapstructure:"global_level"`
	// CoarseClock timestamps entries with core.CoarseNow
	CoarseClock bool `mapstructure:"coarse_clock"`
	// Shared describes the shared log
	Shared SinkConfig `mapstructure:"shared"`
}

// SinkConfig describes one logger of the tree. Which fields apply
// depends on Type.
type SinkConfig struct {
	Type  string     `mapstructure:"type"`
	Name  string     `mapstructure:"name"`
	Level core.Level `mapstructure:"level"`

	// file and zap
	Path string `mapstructure:"path"`

	// file
	Mode       filehandler.Mode `mapstructure:"mode"`
	MaxSizeMB  int              `mapstructure:"max_size_mb"`
	MaxBackups int              `mapstructure:"max_backups"`
	MaxAgeDays int              `mapstructure:"max_age_days"`
	Compress   bool             `mapstructure:"compress"`

	// file, stderr and stdout
	TimestampFormat string `mapstructure:"timestamp_format"`
	UTC             bool   `mapstructure:"utc"`

	// zap: json (default) or console
	Encoding string `mapstructure:"encoding"`

	// multi and array
	Children []SinkConfig `mapstructure:"children"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("global_level", "all")
	v.SetDefault("coarse_clock", false)
	v.SetDefault("shared.type", TypeStderr)
	v.SetDefault("shared.level", "info")
	v.SetDefault("shared.path", "")
	v.SetDefault("shared.mode", "append")
	v.SetDefault("shared.timestamp_format", "")
	v.SetDefault("shared.utc", false)
}

// Load reads the configuration at path, applies environment overrides
// and defaults, and decodes the result. An empty path loads defaults and
// the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, nil
}
