// Package config layers the runtime configuration: built-in defaults, an
// optional YAML file, then environment variables for addresses.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsdesk/support-agent-pipeline/internal/core"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
	Rules  core.RuleSet `yaml:"rules"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// KafkaConfig controls the optional ingestion consumer. The consumer runs
// only when at least one broker is configured.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

// RedisConfig selects the shared session store. An empty URL keeps sessions
// in process memory.
type RedisConfig struct {
	URL string `yaml:"url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console | json
}

// Defaults returns the baseline configuration with the built-in rule tables.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Kafka: KafkaConfig{
			Topic:   "conversations",
			GroupID: "support-agent-group",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Rules: core.DefaultRuleSet(),
	}
}

// Load builds the effective config. path may be empty; env vars win over the
// file, the file wins over defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("API_PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		c.Kafka.Brokers = strings.Split(brokers, ",")
	}
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		c.Kafka.Topic = topic
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Redis.URL = url
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

func (c *Config) validate() error {
	if len(c.Rules.Intents) == 0 {
		return fmt.Errorf("config: intent table cannot be empty")
	}
	for _, p := range c.Rules.Intents {
		if p.Intent == "" {
			return fmt.Errorf("config: intent pattern with empty name")
		}
		if len(p.Keywords) == 0 {
			return fmt.Errorf("config: intent %q has no keywords", p.Intent)
		}
	}
	return nil
}

// KafkaEnabled reports whether the ingestion consumer should run.
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
