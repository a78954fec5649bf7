package config

import "github.com/caarlos0/env/v11"

// Config holds the startup configuration for the API process. The OpenAI
// key is required; the process refuses to start without it.
type Config struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIModel  string `env:"OPENAI_MODEL"                     envDefault:"gpt-3.5-turbo"`
	Port         string `env:"PORT"                             envDefault:"8080"`
	FrontendURL  string `env:"FRONTEND_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
