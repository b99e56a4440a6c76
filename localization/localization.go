// Package localization loads translation bundles and carries request
// languages through contexts, maps and HTTP headers.
package localization

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "intlbridge/localization/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds language preferences to the current supplied context.
func ToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext extracts language preferences from the supplied context if any exist.
func FromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

func ToMap(m map[string]string, lang []string) map[string]string {
	m["lang"] = strings.Join(lang, ",")
	return m
}

func FromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}

// Manager wraps a translation bundle and performs message lookups for an
// explicit language preference list.
type Manager interface {
	Bundle() *i18n.Bundle
	Translate(ctx context.Context, languages []string, messageID string) string
	TranslateWithMap(ctx context.Context, languages []string, messageID string, variables map[string]any) string
	TranslateWithMapAndCount(
		ctx context.Context,
		languages []string,
		messageID string,
		variables map[string]any,
		count int,
	) string
}

type managerImpl struct {
	bundle *i18n.Bundle
}

// NewManager loads the message files for the supplied languages from the
// translations folder.
func NewManager(translationsFolder string, languages ...string) Manager {
	if translationsFolder == "" {
		translationsFolder = "localization"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range languages {
		bundle.MustLoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", translationsFolder, lang))
	}

	return &managerImpl{bundle: bundle}
}

// Bundle Access the translation bundle instantiated in the system.
func (s *managerImpl) Bundle() *i18n.Bundle {
	return s.bundle
}

// Translate performs a quick translation based on the supplied message id.
func (s *managerImpl) Translate(ctx context.Context, languages []string, messageID string) string {
	return s.TranslateWithMap(ctx, languages, messageID, map[string]any{})
}

// TranslateWithMap performs a translation with variables based on the supplied message id.
func (s *managerImpl) TranslateWithMap(
	ctx context.Context,
	languages []string,
	messageID string,
	variables map[string]any,
) string {
	return s.TranslateWithMapAndCount(ctx, languages, messageID, variables, 1)
}

// TranslateWithMapAndCount performs a translation with variables based on the
// supplied message id and can pluralize. An empty language list falls back to
// whatever preferences the context carries.
func (s *managerImpl) TranslateWithMapAndCount(
	ctx context.Context,
	languages []string,
	messageID string,
	variables map[string]any,
	count int,
) string {
	if len(languages) == 0 {
		languages = FromContext(ctx)
	}

	localizer := i18n.NewLocalizer(s.bundle, languages...)

	transVersion, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID},
		TemplateData:   variables,
		PluralCount:    count,
	})
	if err != nil {
		logger := util.Log(ctx).WithError(err).WithField("messageID", messageID)
		logger.Error("TranslateWithMapAndCount -- could not perform translation")

		if transVersion == "" {
			return messageID
		}
	}

	return transVersion
}

// ExtractLanguageFromHTTPRequest prefers an explicit lang form value over the
// Accept-Language header.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := ExtractLanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

func ExtractLanguageFromHTTPHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	if acceptLanguageHeader == "" {
		return nil
	}

	languages := strings.Split(acceptLanguageHeader, ",")
	for i, lang := range languages {
		// Strip quality weights like ";q=0.8".
		if idx := strings.IndexByte(lang, ';'); idx >= 0 {
			lang = lang[:idx]
		}
		languages[i] = strings.TrimSpace(lang)
	}

	return languages
}
