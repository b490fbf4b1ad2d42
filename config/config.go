package config

import (
	"github.com/spf13/viper"

	"github.com/moyu-x/similar-file/internal"
)

type Config struct {
	Database struct {
		Path string
	}
	Trash struct {
		Dir string
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.similar-file")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/similar-file")

	viper.SetDefault("database.path", internal.DefaultDatabasePath)
	viper.SetDefault("trash.dir", internal.DefaultTrashDir)
	viper.SetDefault("performance.workers", 0)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
