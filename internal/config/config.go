package config

import (
	"os"

	"cardroom/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides tunable defaults for the card room engine
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	}
	Simulation struct {
		// Iterations is the default Monte Carlo iteration count
		Iterations int `yaml:"iterations" envconfig:"iterations"`
		Workers    int `yaml:"workers" envconfig:"workers"`
	}
	Betting struct {
		// RaiseCap is one opening bet plus N-1 raises per street
		RaiseCap      int `yaml:"raiseCap" envconfig:"raise_cap"`
		ChipIncrement int `yaml:"chipIncrement" envconfig:"chip_increment"`
	}
}

var config Config

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
// A missing config file is not an error; the defaults are used
func Load() error {
	config = defaults()

	configFile := util.Getenv("CARDROOM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardroom", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.Simulation.Iterations = 2500
	c.Simulation.Workers = 4
	c.Betting.RaiseCap = 4
	c.Betting.ChipIncrement = 25

	return c
}
