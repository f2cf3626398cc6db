package internal

import "github.com/caarlos0/env/v11"

type Config struct {
	SaveDir string `env:"SAVEBANK_DIR" envDefault:"./saves"`
	Target  string `env:"SAVEBANK_TARGET" envDefault:"game"`
}

// LoadConfig reads defaults from the environment. Command-line flags
// override whatever comes back.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
