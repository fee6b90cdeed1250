package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "CRYPTO_FACADE"

// ConfigFileEnv names the environment variable holding an optional config file path
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// CLISettings holds the settings of the command-line tool
type CLISettings struct {
	Logger LoggerSettings `mapstructure:"logger"`
}

// Validate checks the nested settings
func (s *CLISettings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return fmt.Errorf("invalid logger settings: %w", err)
	}
	return nil
}

// Load reads CLISettings from defaults, the optional file at path (YAML, JSON or TOML)
// and environment variables such as CRYPTO_FACADE_LOGGER_LOG_LEVEL.
// Variables from a .env file in the working directory are loaded first; existing
// environment variables win over it.
func Load(path string) (*CLISettings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	defaults := DefaultLoggerSettings()
	v := viper.New()
	v.SetDefault("logger.log_level", defaults.LogLevel)
	v.SetDefault("logger.log_type", defaults.LogType)
	v.SetDefault("logger.file_path", defaults.FilePath)
	v.SetDefault("logger.max_size", defaults.MaxSize)
	v.SetDefault("logger.max_backups", defaults.MaxBackups)
	v.SetDefault("logger.max_age", defaults.MaxAge)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var settings CLISettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}
