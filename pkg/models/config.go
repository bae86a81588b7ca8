package models

import "time"

const DefaultAPIURL = "http://localhost:3001"

// Config is read from config.yaml with environment overrides. The API token
// is a secret and never comes from the file.
type Config struct {
	API      APIConfig `yaml:"api"`
	Log      LogConfig `yaml:"log"`
	Settings Settings  `yaml:"settings"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"LAZYFTP_API_URL" env-default:"http://localhost:3001"`
	Timeout time.Duration `yaml:"timeout" env:"LAZYFTP_API_TIMEOUT" env-default:"30s"`
	Token   string        `yaml:"-" env:"LAZYFTP_API_TOKEN"`
}

type LogConfig struct {
	// File defaults to <config dir>/lazyftp.log when empty.
	File  string `yaml:"file" env:"LAZYFTP_LOG_FILE"`
	Debug bool   `yaml:"debug" env:"LAZYFTP_DEBUG" env-default:"false"`
}

func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: 30 * time.Second,
		},
		Settings: Settings{},
	}
}
