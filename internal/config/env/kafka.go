package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                []string `env:"KAFKA_BROKERS"`
	StockMovementTopicName string   `env:"STOCK_MOVEMENT_TOPIC_NAME" envDefault:"inventory.stock-movement"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled reports whether any broker is configured. Without one, stock movements are
// not published.
func (cfg *kafka) Enabled() bool              { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string          { return cfg.raw.Brokers }
func (cfg *kafka) StockMovementTopic() string { return cfg.raw.StockMovementTopicName }

func (cfg *kafka) StockMovementProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
