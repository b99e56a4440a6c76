package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestContextHelpersAndKeyString() {
	ctx := context.Background()
	cfg := ConfigurationDefault{ServiceName: "bridge"}

	s.Equal("intlbridge/config/configurationKey", ctxKeyConfiguration.String())

	ctx = ToContext(ctx, cfg)
	fromCtx := FromContext[ConfigurationDefault](ctx)
	s.Equal("bridge", fromCtx.ServiceName)

	missing := FromContext[*ConfigurationDefault](context.Background())
	s.Nil(missing)
}

func (s *ConfigSuite) TestFromEnvDefaults() {
	cfg, err := FromEnv[ConfigurationDefault]()
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal("intlbridge", cfg.ServiceName)
	s.Equal(":8080", cfg.HTTPServerPort)
	s.Equal([]string{"en"}, cfg.DefaultLanguages)
	s.Equal("localization", cfg.TranslationsFolder)
}

func (s *ConfigSuite) TestFromEnvOverrides() {
	s.T().Setenv("SERVICE_NAME", "bridge-eu")
	s.T().Setenv("HTTP_PORT", ":9900")
	s.T().Setenv("TRANSLATION_LANGUAGES", "en,sw")

	cfg, err := FromEnv[ConfigurationDefault]()
	s.Require().NoError(err)

	s.Equal("bridge-eu", cfg.ServiceName)
	s.Equal(":9900", cfg.HTTPServerPort)
	s.Equal([]string{"en", "sw"}, cfg.TranslationLanguage)

	var filled ConfigurationDefault
	s.Require().NoError(FillEnv(&filled))
	s.Equal("bridge-eu", filled.ServiceName)
}

func (s *ConfigSuite) TestAccessorInterfaces() {
	cfg := &ConfigurationDefault{
		ServiceName:         "bridge",
		LogLevel:            "debug",
		LogTimeFormat:       "15:04:05",
		LogColored:          true,
		TranslationsFolder:  "lang",
		TranslationLanguage: []string{"en", "sw"},
	}

	s.Equal("bridge", cfg.Name())
	s.Equal("debug", cfg.LoggingLevel())
	s.Equal("15:04:05", cfg.LoggingTimeFormat())
	s.True(cfg.LoggingColored())
	s.Equal("lang", cfg.TranslationsDirectory())
	s.Equal([]string{"en", "sw"}, cfg.TranslationLanguages())
}
