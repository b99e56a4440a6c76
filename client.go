package intlbridge

import (
	"context"
)

// Sub-API and method names recognized by the default host registry. The set
// is open-ended; callers can address any name the host side registers.
const (
	subAPIPluralRules    = "PluralRules"
	subAPINumberFormat   = "NumberFormat"
	subAPIDateTimeFormat = "DateTimeFormat"

	methodSelect = "select"
	methodFormat = "format"
)

// PluralKind selects between the two plural semantics a language defines.
type PluralKind string

const (
	PluralCardinal PluralKind = "cardinal"
	PluralOrdinal  PluralKind = "ordinal"
)

// Category is one of the six standard CLDR plural category tokens.
type Category string

const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

//nolint:gochecknoglobals // fixed token set shared by every category lookup
var categoryTokens = map[string]Category{
	"zero":  CategoryZero,
	"one":   CategoryOne,
	"two":   CategoryTwo,
	"few":   CategoryFew,
	"many":  CategoryMany,
	"other": CategoryOther,
}

// PluralQuery describes a plural category selection.
type PluralQuery struct {
	Language string
	Kind     PluralKind
	Number   float64
}

// NumberQuery describes a locale aware number formatting call. Options is an
// open-ended mapping of formatting directives passed through to the host
// without local validation.
type NumberQuery struct {
	Language string
	Options  map[string]any
	Number   float64
}

// DateTimeQuery describes a locale aware date/time formatting call for an
// instant given as milliseconds since the Unix epoch.
type DateTimeQuery struct {
	Language    string
	Options     map[string]any
	EpochMillis int64
}

// PluralCategory selects the CLDR plural category for a number in a language.
// Any failure, and any response outside the six category tokens, degrades to
// CategoryOther.
func PluralCategory(ctx context.Context, h Handle, q PluralQuery) Category {
	ctorArgs := []any{q.Language}
	// Ordinal requests carry an extra options object; cardinal requests omit
	// it entirely rather than sending a flag.
	if q.Kind == PluralOrdinal {
		ctorArgs = append(ctorArgs, map[string]any{"type": "ordinal"})
	}

	req := Request{
		SubAPI:     subAPIPluralRules,
		CtorArgs:   ctorArgs,
		Method:     methodSelect,
		MethodArgs: []any{q.Number},
	}

	result, ok := dispatch(ctx, h, req)
	if !ok {
		return CategoryOther
	}

	category, known := categoryTokens[result]
	if !known {
		return CategoryOther
	}

	return category
}

// FormatNumber formats a number for a language with the supplied formatting
// directives. Any failure degrades to the empty string.
func FormatNumber(ctx context.Context, h Handle, q NumberQuery) string {
	req := Request{
		SubAPI:     subAPINumberFormat,
		CtorArgs:   []any{q.Language, optionsOrEmpty(q.Options)},
		Method:     methodFormat,
		MethodArgs: []any{q.Number},
	}

	result, _ := dispatch(ctx, h, req)
	return result
}

// FormatDateTime formats an epoch instant for a language with the supplied
// formatting directives. Any failure degrades to the empty string.
func FormatDateTime(ctx context.Context, h Handle, q DateTimeQuery) string {
	req := Request{
		SubAPI:     subAPIDateTimeFormat,
		CtorArgs:   []any{q.Language, optionsOrEmpty(q.Options)},
		Method:     methodFormat,
		MethodArgs: []any{q.EpochMillis},
	}

	result, _ := dispatch(ctx, h, req)
	return result
}

// Raw exposes the handle's request/response contract directly for callers
// needing host features not yet wrapped in a typed form.
func Raw(ctx context.Context, h Handle, key string) (string, bool) {
	if h == nil {
		return "", false
	}

	return h.Lookup(ctx, key)
}

func dispatch(ctx context.Context, h Handle, req Request) (string, bool) {
	if h == nil {
		return "", false
	}

	key, err := req.Encode()
	if err != nil {
		return "", false
	}

	return h.Lookup(ctx, key)
}

func optionsOrEmpty(options map[string]any) map[string]any {
	if options == nil {
		return map[string]any{}
	}

	return options
}
