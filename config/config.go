package config

import (
	"github.com/spf13/viper"

	"bflow/log"
)

type Config struct {
	DatabasePath string `mapstructure:"database_path"`
	Listen       string `mapstructure:"listen"`
}

// Load reads config.yaml from the working directory when present and falls
// back to defaults otherwise.
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("database_path", "bflow.db")
	viper.SetDefault("listen", ":8989")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.WithFields(log.Fields{
				"error": err,
			}).Fatal("unable to read configuration file")
		}
		log.Debug("no configuration file found, using defaults")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Fatal("unable to decode configuration")
	}

	log.WithFields(log.Fields{
		"database_path": cfg.DatabasePath,
		"listen":        cfg.Listen,
	}).Debug("configuration loaded")
	return &cfg
}
