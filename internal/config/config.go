package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Sessions SessionsConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type SessionsConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}
