package intlbridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/intlbridge"
	"github.com/pitabwire/intlbridge/intl"
)

type HostSuite struct {
	suite.Suite
}

func TestHostSuite(t *testing.T) {
	suite.Run(t, new(HostSuite))
}

// echoInstance is a minimal custom sub-API used to exercise registry
// extension and containment behaviour.
type echoInstance struct {
	prefix string
}

func (e *echoInstance) Invoke(_ context.Context, method string, args []any) (string, error) {
	if method == "boom" {
		panic("instance exploded")
	}

	out := e.prefix
	for _, arg := range args {
		if s, ok := arg.(string); ok {
			out += s
		}
	}

	return out, nil
}

func newEchoConstructor() intl.Constructor {
	return func(_ context.Context, args []any) (intl.Instance, error) {
		prefix := ""
		if len(args) > 0 {
			prefix, _ = args[0].(string)
		}
		return &echoInstance{prefix: prefix}, nil
	}
}

func (s *HostSuite) TestLookupDispatchesBuiltins() {
	ctx := context.Background()
	host := intlbridge.NewHost(ctx)

	result, ok := host.Lookup(ctx, `["PluralRules",["en"],"select",[1]]`)
	s.Require().True(ok)
	s.Equal("one", result)

	result, ok = host.Lookup(ctx, `["NumberFormat",["en",{}],"format",[1234567]]`)
	s.Require().True(ok)
	s.Equal("1,234,567", result)
}

func (s *HostSuite) TestLookupContainsAllFailures() {
	ctx := context.Background()
	host := intlbridge.NewHost(ctx, intlbridge.WithConstructor("Echo", newEchoConstructor()))

	testCases := []struct {
		name string
		key  string
	}{
		{name: "not json", key: "definitely not a request"},
		{name: "wrong arity", key: `["PluralRules",["en"],"select"]`},
		{name: "unknown sub api", key: `["Nonexistent",[],"anything",[]]`},
		{name: "unknown method", key: `["PluralRules",["en"],"frobnicate",[1]]`},
		{name: "invalid language tag", key: `["PluralRules",["not a tag!!"],"select",[1]]`},
		{name: "argument type mismatch", key: `["PluralRules",["en"],"select",["one"]]`},
		{name: "missing currency code", key: `["NumberFormat",["en",{"style":"currency"}],"format",[10]]`},
		{name: "invalid currency code", key: `["NumberFormat",["en",{"style":"currency","currency":"NOPE"}],"format",[10]]`},
		{name: "panicking instance", key: `["Echo",[],"boom",[]]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, ok := host.Lookup(ctx, tc.key)
			s.False(ok)
			s.Empty(result)
		})
	}
}

func (s *HostSuite) TestLookupTreatsEveryRequestIndependently() {
	ctx := context.Background()
	host := intlbridge.NewHost(ctx)

	// A failed lookup must not influence a following identical or different call.
	_, ok := host.Lookup(ctx, `["Nonexistent",[],"x",[]]`)
	s.False(ok)

	first, ok := host.Lookup(ctx, `["DateTimeFormat",["en",{"dateStyle":"medium"}],"format",[1788098709000]]`)
	s.Require().True(ok)

	second, ok := host.Lookup(ctx, `["DateTimeFormat",["en",{"dateStyle":"medium"}],"format",[1788098709000]]`)
	s.Require().True(ok)
	s.Equal(first, second)
}

func (s *HostSuite) TestWithConstructorExtendsRegistry() {
	ctx := context.Background()
	host := intlbridge.NewHost(ctx, intlbridge.WithConstructor("Echo", newEchoConstructor()))

	result, ok := host.Lookup(ctx, `["Echo",["pre-"],"say",["a","b"]]`)
	s.Require().True(ok)
	s.Equal("pre-ab", result)
}

func (s *HostSuite) TestHostIdentity() {
	ctx := context.Background()

	first := intlbridge.NewHost(ctx, intlbridge.WithName("bridge-main"))
	second := intlbridge.NewHost(ctx)

	s.Equal("bridge-main", first.Name())
	s.Equal("intlbridge", second.Name())
	s.NotEmpty(first.ID())
	s.NotEqual(first.ID(), second.ID())
}
