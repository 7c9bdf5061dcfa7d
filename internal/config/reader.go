package config

import "github.com/ilyakaznacheev/cleanenv"

// Reader loads a Config from some source. The only implementation reads
// the process environment; a .env file, if any, is loaded into it before
// main runs.
type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
