package intl

import (
	"context"
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number formatting styles mirroring the host option vocabulary.
const (
	styleDecimal  = "decimal"
	stylePercent  = "percent"
	styleCurrency = "currency"
)

// NumberFormat formats numbers for a language. Formatting directives arrive
// as an open-ended options object; keys the implementation does not know are
// ignored rather than rejected.
type NumberFormat struct {
	tag   language.Tag
	style string
	unit  currency.Unit
	opts  []number.Option
}

// NewNumberFormat constructs a number formatter from positional arguments
// [languageTag, optionsObject]. Recognized options: style, currency,
// useGrouping, minimumFractionDigits, maximumFractionDigits,
// minimumIntegerDigits.
func NewNumberFormat(_ context.Context, args []any) (*NumberFormat, error) {
	tag, err := tagArg(args, 0)
	if err != nil {
		return nil, err
	}

	options, err := optionalObjectArg(args, 1)
	if err != nil {
		return nil, err
	}

	nf := &NumberFormat{tag: tag, style: styleDecimal}
	if options == nil {
		return nf, nil
	}

	if style, ok := optString(options, "style"); ok {
		switch style {
		case styleDecimal, stylePercent, styleCurrency:
			nf.style = style
		default:
			return nil, fmt.Errorf("%w: unsupported number style %q", ErrBadArgument, style)
		}
	}

	if nf.style == styleCurrency {
		code, ok := optString(options, "currency")
		if !ok {
			return nil, fmt.Errorf("%w: currency style requires a currency code", ErrBadArgument)
		}

		unit, parseErr := currency.ParseISO(code)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid currency code %q: %v", ErrBadArgument, code, parseErr)
		}

		nf.unit = unit
	}

	if grouping, ok := optBool(options, "useGrouping"); ok && !grouping {
		nf.opts = append(nf.opts, number.NoSeparator())
	}

	if digits, ok := optInt(options, "minimumFractionDigits"); ok {
		nf.opts = append(nf.opts, number.MinFractionDigits(digits))
	}

	if digits, ok := optInt(options, "maximumFractionDigits"); ok {
		nf.opts = append(nf.opts, number.MaxFractionDigits(digits))
	}

	if digits, ok := optInt(options, "minimumIntegerDigits"); ok {
		nf.opts = append(nf.opts, number.MinIntegerDigits(digits))
	}

	return nf, nil
}

// Invoke answers the "format" method with one numeric argument.
func (n *NumberFormat) Invoke(_ context.Context, method string, args []any) (string, error) {
	if method != "format" {
		return "", fmt.Errorf("%w: NumberFormat.%s", ErrUnknownMethod, method)
	}

	x, err := numberArg(args, 0)
	if err != nil {
		return "", err
	}

	printer := message.NewPrinter(n.tag)

	switch n.style {
	case stylePercent:
		return printer.Sprint(number.Percent(x, n.opts...)), nil
	case styleCurrency:
		return printer.Sprint(currency.Symbol(n.unit.Amount(x))), nil
	default:
		return printer.Sprint(number.Decimal(x, n.opts...)), nil
	}
}
