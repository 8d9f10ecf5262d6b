package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type NovaExecConfig struct {
	AppName string `mapstructure:"app_name"`

	Log LogConfig `mapstructure:"log"`

	Output struct {
		// MaxRows caps how many rows `run` prints; 0 means no cap.
		MaxRows int `mapstructure:"max_rows"`
	} `mapstructure:"output"`

	Repl struct {
		Prompt      string `mapstructure:"prompt"`
		HistoryPath string `mapstructure:"history_path"`
		HistoryMax  int    `mapstructure:"history_max"`
	} `mapstructure:"repl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "novaexec")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.max_rows", 0)
	v.SetDefault("repl.prompt", "novaexec> ")
	v.SetDefault("repl.history_path", "")
	v.SetDefault("repl.history_max", 2000)
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
// NOVAEXEC_* environment variables override both, e.g. NOVAEXEC_LOG_LEVEL.
func LoadConfig(path string) (*NovaExecConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("novaexec")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg NovaExecConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
