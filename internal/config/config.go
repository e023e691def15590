package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/parts-inventory/internal/config/env"
)

var cfg *config

type config struct {
	Server Server
	Logger Logger
	Store  Store
	Mongo  Database
	Kafka  Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return fmt.Errorf("%s Store: %w", op, err)
	}

	c := &config{
		Server: serverCfg,
		Logger: loggerCfg,
		Store:  storeCfg,
	}

	if storeCfg.Driver() == envconfig.DriverMongo {
		mongoCfg, err := envconfig.NewMongoConfig()
		if err != nil {
			return fmt.Errorf("%s Mongo: %w", op, err)
		}
		c.Mongo = mongoCfg
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}
	c.Kafka = kafkaCfg

	cfg = c
	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
