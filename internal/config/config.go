package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"60"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Solver struct {
		Timeout    int `env:"TIMEOUT" envDefault:"30"`          // seconds per solve
		NodeBudget int `env:"NODE_BUDGET" envDefault:"2000000"` // search nodes before settling for the incumbent
	} `envPrefix:"SOLVER_"`
	Workload struct {
		MorningRate   float64 `env:"MORNING_RATE" envDefault:"15"`
		AfternoonRate float64 `env:"AFTERNOON_RATE" envDefault:"15"`
	} `envPrefix:"WORKLOAD_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only return the first error to keep the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
