// Package intl implements the host side internationalization facilities the
// bridge exposes: plural rule selection, number formatting, date/time
// formatting and message translation. Each facility is a sub-API constructed
// per call from positional JSON arguments; nothing is cached between calls.
package intl

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"
)

var (
	// ErrUnknownMethod is returned when an instance does not recognize the
	// invoked method name.
	ErrUnknownMethod = errors.New("intl: unknown method")
	// ErrBadArgument is returned when a positional argument is missing or has
	// a shape the sub-API cannot use.
	ErrBadArgument = errors.New("intl: bad argument")
)

// Instance is a constructed sub-API ready to answer method invocations with
// positional arguments.
type Instance interface {
	Invoke(ctx context.Context, method string, args []any) (string, error)
}

// Constructor builds a sub-API instance from positional constructor
// arguments, in order. Constructors validate nothing eagerly beyond what they
// need to build the instance.
type Constructor func(ctx context.Context, args []any) (Instance, error)

// Constructors returns the built-in sub-API registry keyed by the names the
// wire protocol uses.
func Constructors() map[string]Constructor {
	return map[string]Constructor{
		"PluralRules": func(ctx context.Context, args []any) (Instance, error) {
			return NewPluralRules(ctx, args)
		},
		"NumberFormat": func(ctx context.Context, args []any) (Instance, error) {
			return NewNumberFormat(ctx, args)
		},
		"DateTimeFormat": func(ctx context.Context, args []any) (Instance, error) {
			return NewDateTimeFormat(ctx, args)
		},
	}
}

func stringArg(args []any, pos int) (string, error) {
	if pos >= len(args) {
		return "", fmt.Errorf("%w: missing argument at position %d", ErrBadArgument, pos)
	}

	s, ok := args[pos].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d is %T, expected string", ErrBadArgument, pos, args[pos])
	}

	return s, nil
}

func numberArg(args []any, pos int) (float64, error) {
	if pos >= len(args) {
		return 0, fmt.Errorf("%w: missing argument at position %d", ErrBadArgument, pos)
	}

	switch v := args[pos].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: argument %d is %T, expected number", ErrBadArgument, pos, args[pos])
	}
}

// optionalObjectArg returns the options object at pos, or nil when the
// argument list ends before it.
func optionalObjectArg(args []any, pos int) (map[string]any, error) {
	if pos >= len(args) || args[pos] == nil {
		return nil, nil
	}

	m, ok := args[pos].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d is %T, expected object", ErrBadArgument, pos, args[pos])
	}

	return m, nil
}

func tagArg(args []any, pos int) (language.Tag, error) {
	s, err := stringArg(args, pos)
	if err != nil {
		return language.Und, err
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: invalid language tag %q: %v", ErrBadArgument, s, err)
	}

	return tag, nil
}

func optString(options map[string]any, key string) (string, bool) {
	v, ok := options[key].(string)
	return v, ok
}

func optBool(options map[string]any, key string) (bool, bool) {
	v, ok := options[key].(bool)
	return v, ok
}

// optInt reads an integral option; JSON decoding surfaces numbers as float64.
func optInt(options map[string]any, key string) (int, bool) {
	switch v := options[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
