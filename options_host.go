package intlbridge

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/pitabwire/intlbridge/config"
	"github.com/pitabwire/intlbridge/intl"
	"github.com/pitabwire/intlbridge/localization"
)

// Sub-API name the Translator option registers under.
const subAPITranslator = "Translator"

// WithName specifies the name the host will utilize.
func WithName(name string) Option {
	return func(_ context.Context, h *Host) {
		h.name = name
	}
}

// WithConfig Option that helps to specify or override the configuration
// object of our host.
func WithConfig(cfg any) Option {
	return func(ctx context.Context, h *Host) {
		h.configuration = cfg

		serviceCfg, ok := cfg.(config.ConfigurationService)
		if ok && serviceCfg.Name() != "" {
			WithName(serviceCfg.Name())(ctx, h)
		}

		WithLogger()(ctx, h)
	}
}

// WithLogger Option that helps with initialization of our internal logger.
func WithLogger(opts ...util.Option) Option {
	return func(ctx context.Context, h *Host) {
		if h.Config() != nil {
			cfg, ok := h.Config().(config.ConfigurationLogLevel)
			if ok {
				logLevel, err := util.ParseLevel(cfg.LoggingLevel())
				if err == nil {
					opts = append(opts, util.WithLogLevel(logLevel))
				}
				opts = append(opts,
					util.WithLogTimeFormat(cfg.LoggingTimeFormat()),
					util.WithLogNoColor(!cfg.LoggingColored()))
			}
		}

		h.logger = util.NewLogger(ctx, opts...)
	}
}

// WithConstructor registers a sub-API constructor under the supplied name,
// replacing any previous registration. The registry is open-ended; callers
// can expose host facilities the built-in set does not cover.
func WithConstructor(name string, ctor intl.Constructor) Option {
	return func(_ context.Context, h *Host) {
		h.constructors[name] = ctor
	}
}

// WithTranslation Option to initialize/load different language packs and
// expose them through the Translator sub-API.
func WithTranslation(translationsFolder string, languages ...string) Option {
	return func(ctx context.Context, h *Host) {
		manager := localization.NewManager(translationsFolder, languages...)
		WithConstructor(subAPITranslator, intl.NewTranslatorConstructor(manager))(ctx, h)
	}
}
