package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type storeEnv struct {
	Driver string `env:"STORE_DRIVER" envDefault:"mongo"`
	Seed   bool   `env:"STORE_SEED_DEFAULTS" envDefault:"true"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	switch raw.Driver {
	case DriverMemory, DriverMongo:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", raw.Driver)
	}
	return &store{raw: raw}, nil
}

func (cfg *store) Driver() string     { return cfg.raw.Driver }
func (cfg *store) SeedDefaults() bool { return cfg.raw.Seed }
