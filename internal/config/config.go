package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis     Redis     `yaml:"redis"`
	MoveCache MoveCache `yaml:"move-cache"`
	Match     Match     `yaml:"match"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type MoveCache struct {
	Enabled      bool          `yaml:"enabled" env:"MOVE_CACHE_ENABLED" env-default:"false"`
	TTL          time.Duration `yaml:"ttl" env:"MOVE_CACHE_TTL" env-default:"24h"`
	FlushOnStart bool          `yaml:"flush-on-start" env:"MOVE_CACHE_FLUSH_ON_START" env-default:"false"`
}

type Match struct {
	VsAI          bool   `yaml:"vs-ai" env:"MATCH_VS_AI" env-default:"false"`
	AIMark        string `yaml:"ai-mark" env:"MATCH_AI_MARK" env-default:"X"`
	FirstPlayer   string `yaml:"first-player" env:"MATCH_FIRST_PLAYER" env-default:"O"`
	SelfPlayGames int    `yaml:"self-play-games" env:"MATCH_SELF_PLAY_GAMES" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
