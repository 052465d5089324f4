package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GRPCAddr    string
	MetricsAddr string

	KafkaBrokers    []string
	OrdersTopic     string
	ExecutionsTopic string
	ConsumerGroup   string

	TickerCapacity int
	MatchInterval  time.Duration
	RingSize       uint64

	SimEnabled  bool
	SimWorkers  int
	SimInterval time.Duration
}

// Load reads configuration from the environment, with an optional .env
// file for local runs. Every key has a usable default; Kafka is off
// unless brokers are set.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("no config file found: %v", err)
	}

	viper.SetDefault("GRPC_ADDR", ":50051")
	viper.SetDefault("METRICS_ADDR", ":9102")
	viper.SetDefault("ORDERS_TOPIC", "orders")
	viper.SetDefault("EXECUTIONS_TOPIC", "executions")
	viper.SetDefault("CONSUMER_GROUP", "crux-engine")
	viper.SetDefault("TICKER_CAPACITY", 1024)
	viper.SetDefault("MATCH_INTERVAL", "100ms")
	viper.SetDefault("RING_SIZE", 1<<16)
	viper.SetDefault("SIM_ENABLED", false)
	viper.SetDefault("SIM_WORKERS", 2)
	viper.SetDefault("SIM_INTERVAL", "1ms")

	return &Config{
		GRPCAddr:        viper.GetString("GRPC_ADDR"),
		MetricsAddr:     viper.GetString("METRICS_ADDR"),
		KafkaBrokers:    viper.GetStringSlice("KAFKA_BROKERS"),
		OrdersTopic:     viper.GetString("ORDERS_TOPIC"),
		ExecutionsTopic: viper.GetString("EXECUTIONS_TOPIC"),
		ConsumerGroup:   viper.GetString("CONSUMER_GROUP"),
		TickerCapacity:  viper.GetInt("TICKER_CAPACITY"),
		MatchInterval:   viper.GetDuration("MATCH_INTERVAL"),
		RingSize:        uint64(viper.GetInt("RING_SIZE")),
		SimEnabled:      viper.GetBool("SIM_ENABLED"),
		SimWorkers:      viper.GetInt("SIM_WORKERS"),
		SimInterval:     viper.GetDuration("SIM_INTERVAL"),
	}
}
