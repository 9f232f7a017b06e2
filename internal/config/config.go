package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AllocationConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	AllocationDB    `yaml:"allocation_db"`
	LogConfig       `yaml:"log_config"`
	CatalogService  `yaml:"catalog-service"`
	CustomerService `yaml:"customer-service"`
	GeocoderService `yaml:"geocoder-service"`
	KafkaService    `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type AllocationDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type CatalogService struct {
	Address string `yaml:"address"`
}

type CustomerService struct {
	Address string `yaml:"address"`
}

type GeocoderService struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout" env-default:"2s"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"seller-order-events"`
}

func MustLoad() *AllocationConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ALLOCATION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ALLOCATION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AllocationConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
