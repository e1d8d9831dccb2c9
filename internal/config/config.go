// Package config loads settings from an optional YAML file and the
// environment. SMTP credentials come from the environment only.
package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	OED       OEDConfig       `mapstructure:"oed"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Email     EmailConfig     `mapstructure:"email"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

type OEDConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"max=10"`
}

type SMTPConfig struct {
	Server         string `mapstructure:"server"`
	Port           int    `mapstructure:"port" validate:"min=0,max=65535"`
	SenderEmail    string `mapstructure:"sender_email" validate:"omitempty,email"`
	SenderPassword string `mapstructure:"sender_password"`
}

type EmailConfig struct {
	RecipientList []string `mapstructure:"recipient_list" validate:"omitempty,dive,email"`
	Subject       string   `mapstructure:"subject"`
}

type ArchiveConfig struct {
	Directory string `mapstructure:"directory"`
	Enabled   bool   `mapstructure:"enabled"`
}

type TemplatesConfig struct {
	TextEmailTemplate string `mapstructure:"text_email_template" validate:"omitempty,template_file"`
	HTMLEmailTemplate string `mapstructure:"html_email_template" validate:"omitempty,template_file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wotd")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("oed.base_url", "https://www.oed.com")
	v.SetDefault("oed.timeout_seconds", 30)
	v.SetDefault("oed.retry_attempts", 2)
	v.SetDefault("email.subject", "Word of the Day")
	v.SetDefault("archive.directory", "files")
	v.SetDefault("archive.enabled", true)
	// Templates are optional - if not specified, embedded fallbacks are used
	v.SetDefault("templates.text_email_template", "")
	v.SetDefault("templates.html_email_template", "")

	// Bind SMTP settings and the recipient list to environment variables only
	// (not from config file), so credentials stay out of config files
	envBindings := []struct {
		key    string
		envVar string
	}{
		{"smtp.server", "SMTP_SERVER"},
		{"smtp.port", "SMTP_PORT"},
		{"smtp.sender_email", "SENDER_EMAIL"},
		{"smtp.sender_password", "SENDER_PASSWORD"},
		{"email.recipient_list", "RECIPIENT_LIST"},
	}
	for _, binding := range envBindings {
		if err := v.BindEnv(binding.key, binding.envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", binding.envVar, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// RequireSMTP checks that everything needed to send an email is configured.
// Called before any network I/O so a misconfigured run fails fast.
func (cfg *Config) RequireSMTP() error {
	var missing []string
	if cfg.SMTP.Server == "" {
		missing = append(missing, "SMTP_SERVER")
	}
	if cfg.SMTP.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.SMTP.SenderEmail == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if cfg.SMTP.SenderPassword == "" {
		missing = append(missing, "SENDER_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
