package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// knownFormats are the annotation format tags the parser understands.
// Kept as plain strings so util does not depend on package furigana.
var knownFormats = map[string]bool{
	"json":     true,
	"ruby":     true,
	"brackets": true,
	"spaced":   true,
	"mecab":    true,
	"kuromoji": true,
}

type Config struct {
	Environment     string `mapstructure:"ENVIRONMENT"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	DefaultFormat   string `mapstructure:"DEFAULT_FORMAT"`
	AnnotateWorkers int    `mapstructure:"ANNOTATE_WORKERS"`
}

// LoadConfig reads app.env from path, with environment variables taking
// precedence. A missing config file is fine — defaults apply.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEFAULT_FORMAT", "json")
	viper.SetDefault("ANNOTATE_WORKERS", 4)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	err = config.validate()
	return
}

func (config *Config) validate() error {
	if !knownFormats[config.DefaultFormat] {
		return fmt.Errorf("unknown default format %q", config.DefaultFormat)
	}
	if config.AnnotateWorkers < 1 {
		return fmt.Errorf("annotate workers must be positive, got %d", config.AnnotateWorkers)
	}
	return nil
}
