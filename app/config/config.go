package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     Log     `yaml:"log"`
	Server  Server  `yaml:"server"`
	Advisor Advisor `yaml:"advisor"`
}

type Server struct {
	// Address to listen on
	Addr string `yaml:"addr" example:":8080"`
}

type Advisor struct {
	// Text generation provider, either "openai" or "gemini"
	Provider string `yaml:"provider" example:"gemini" validate:"required,oneof=openai gemini"`
	OpenAI   OpenAI `yaml:"openai"`
	Gemini   Gemini `yaml:"gemini"`
}

type OpenAI struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4o-mini"`
}

type Gemini struct {
	// Google AI API key
	APIKey string `yaml:"api_key" example:"AIzaSyAbc123Def456Ghi789Jkl012Mno345Pqr678"`
	// Gemini model
	Model string `yaml:"model" example:"gemini-1.5-flash"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.Advisor.Provider == "" {
		result.Advisor.Provider = "gemini"
	}
	if result.Advisor.OpenAI.BaseURL == "" {
		result.Advisor.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if result.Advisor.OpenAI.Model == "" {
		result.Advisor.OpenAI.Model = "gpt-4o-mini"
	}
	if result.Advisor.Gemini.Model == "" {
		result.Advisor.Gemini.Model = "gemini-1.5-flash"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	// A session must never fail mid-conversation because of a missing key,
	// so the credential check happens here, before anything starts.
	switch result.Advisor.Provider {
	case "openai":
		if result.Advisor.OpenAI.Token == "" {
			return nil, oops.Errorf("advisor.openai.token is required for the openai provider")
		}
	case "gemini":
		if result.Advisor.Gemini.APIKey == "" {
			return nil, oops.Errorf("advisor.gemini.api_key is required for the gemini provider")
		}
	}

	return &result, nil
}
