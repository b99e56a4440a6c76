package intl

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRules selects the CLDR plural category for numbers in a language.
// The constructor takes a language tag and, for ordinal semantics only, an
// options object of the shape {"type": "ordinal"}; its absence means
// cardinal.
type PluralRules struct {
	tag   language.Tag
	rules *plural.Rules
}

// NewPluralRules constructs plural rules from positional arguments
// [languageTag] or [languageTag, {"type": "ordinal"}].
func NewPluralRules(_ context.Context, args []any) (*PluralRules, error) {
	tag, err := tagArg(args, 0)
	if err != nil {
		return nil, err
	}

	rules := plural.Cardinal

	options, err := optionalObjectArg(args, 1)
	if err != nil {
		return nil, err
	}

	if options != nil {
		switch kind, _ := optString(options, "type"); kind {
		case "", "cardinal":
		case "ordinal":
			rules = plural.Ordinal
		default:
			return nil, fmt.Errorf("%w: unsupported plural type %q", ErrBadArgument, kind)
		}
	}

	return &PluralRules{tag: tag, rules: rules}, nil
}

// Invoke answers the "select" method with one numeric argument, returning one
// of the six category tokens.
func (p *PluralRules) Invoke(_ context.Context, method string, args []any) (string, error) {
	if method != "select" {
		return "", fmt.Errorf("%w: PluralRules.%s", ErrUnknownMethod, method)
	}

	n, err := numberArg(args, 0)
	if err != nil {
		return "", err
	}

	i, v, w, f, t := operands(n)

	return categoryToken(p.rules.MatchPlural(p.tag, i, v, w, f, t)), nil
}

// operands derives the CLDR plural operands from a number: the integer part,
// the count of visible fraction digits with and without trailing zeros, and
// the fraction digit values with and without trailing zeros.
func operands(n float64) (i, v, w, f, t int) {
	n = math.Abs(n)

	s := strconv.FormatFloat(n, 'f', -1, 64)

	intPart := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		frac := s[dot+1:]

		v = len(frac)
		f, _ = strconv.Atoi(frac)

		trimmed := strings.TrimRight(frac, "0")
		w = len(trimmed)
		if trimmed != "" {
			t, _ = strconv.Atoi(trimmed)
		}
	}

	i, _ = strconv.Atoi(intPart)

	return i, v, w, f, t
}

func categoryToken(form plural.Form) string {
	switch form {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}
