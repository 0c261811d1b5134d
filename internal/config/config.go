package config

import (
	"errors"
	"os"

	"blackjackdealer-server/internal/util"
	"blackjackdealer-server/pkg/playable/blackjack"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack dealer
type Config struct {
	loaded bool

	// PGDSN enables the postgres table store. Tables are kept in memory when it is empty.
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	} `yaml:"jwt"`
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CardImageBaseURL string            `yaml:"cardImageBaseUrl" envconfig:"card_image_base_url"`
	Game             blackjack.Options `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.MigrationsPath = "./sql"
	cfg.JWT.PublicKey = "public.pem"
	cfg.JWT.PrivateKey = "private.key"
	cfg.Log.Level = "info"
	cfg.CardImageBaseURL = "/card_images"
	cfg.Game = blackjack.DefaultOptions()

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and the environment are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("bjd", &cfg); err != nil {
		return err
	}

	if err := cfg.Game.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
