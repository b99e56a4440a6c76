// Package config processes bridge configuration from the environment.
package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "intlbridge/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// ToContext adds configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// ConfigurationService exposes identity settings for the running bridge.
type ConfigurationService interface {
	Name() string
}

// ConfigurationLogLevel exposes logging settings.
type ConfigurationLogLevel interface {
	LoggingLevel() string
	LoggingTimeFormat() string
	LoggingColored() bool
}

// ConfigurationTranslation exposes translation bundle settings.
type ConfigurationTranslation interface {
	TranslationsDirectory() string
	TranslationLanguages() []string
}

// ConfigurationDefault is the standard bridge configuration read from the
// environment.
type ConfigurationDefault struct {
	LogLevel      string `envDefault:"info"                      env:"LOG_LEVEL"       yaml:"log_level"`
	LogTimeFormat string `envDefault:"2006-01-02T15:04:05Z07:00" env:"LOG_TIME_FORMAT" yaml:"log_time_format"`
	LogColored    bool   `envDefault:"true"                      env:"LOG_COLORED"     yaml:"log_colored"`

	ServiceName string `envDefault:"intlbridge" env:"SERVICE_NAME" yaml:"service_name"`

	HTTPServerPort string `envDefault:":8080" env:"HTTP_PORT" yaml:"http_server_port"`

	DefaultLanguages []string `envDefault:"en" env:"DEFAULT_LANGUAGES" yaml:"default_languages"`

	TranslationsFolder  string   `envDefault:"localization" env:"TRANSLATIONS_FOLDER" yaml:"translations_folder"`
	TranslationLanguage []string `env:"TRANSLATION_LANGUAGES" yaml:"translation_languages"`
}

func (c *ConfigurationDefault) Name() string {
	return c.ServiceName
}

func (c *ConfigurationDefault) LoggingLevel() string {
	return c.LogLevel
}

func (c *ConfigurationDefault) LoggingTimeFormat() string {
	return c.LogTimeFormat
}

func (c *ConfigurationDefault) LoggingColored() bool {
	return c.LogColored
}

func (c *ConfigurationDefault) TranslationsDirectory() string {
	return c.TranslationsFolder
}

func (c *ConfigurationDefault) TranslationLanguages() []string {
	return c.TranslationLanguage
}
