package intl

import (
	"context"
	"fmt"

	"github.com/pitabwire/intlbridge/localization"
)

// Translator answers message translation requests against a translation
// bundle configured on the host. Constructor arguments are zero or more
// language tags; with none supplied the request languages come from the
// context, which the transport fills from Accept-Language.
type Translator struct {
	manager   localization.Manager
	languages []string
}

// NewTranslatorConstructor binds the Translator sub-API to a translation
// manager. Registered on a host it answers the "localize" method with
// positional arguments [messageID, templateData?, pluralCount?].
func NewTranslatorConstructor(manager localization.Manager) Constructor {
	return func(_ context.Context, args []any) (Instance, error) {
		languages := make([]string, 0, len(args))
		for pos := range args {
			lang, err := stringArg(args, pos)
			if err != nil {
				return nil, err
			}
			languages = append(languages, lang)
		}

		return &Translator{manager: manager, languages: languages}, nil
	}
}

func (t *Translator) Invoke(ctx context.Context, method string, args []any) (string, error) {
	if method != "localize" {
		return "", fmt.Errorf("%w: Translator.%s", ErrUnknownMethod, method)
	}

	messageID, err := stringArg(args, 0)
	if err != nil {
		return "", err
	}

	variables, err := optionalObjectArg(args, 1)
	if err != nil {
		return "", err
	}

	count := 1
	if len(args) > 2 {
		n, numErr := numberArg(args, 2)
		if numErr != nil {
			return "", numErr
		}
		count = int(n)
	}

	return t.manager.TranslateWithMapAndCount(ctx, t.languages, messageID, variables, count), nil
}
