package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the environment variable holding the shared config file.
const EnvConfigPath = "UCOINS_CONFIG"

const defaultConfigPath = "./ucoins.yaml"

// Load reads the shared configuration of the ucoins tools.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The YAML file is path when given, otherwise $UCOINS_CONFIG, otherwise
// ./ucoins.yaml. A file named by path or $UCOINS_CONFIG must exist; a missing
// ./ucoins.yaml means ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
