package intlbridge_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/intlbridge"
)

type ClientSuite struct {
	suite.Suite

	host *intlbridge.Host
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.host = intlbridge.NewHost(context.Background())
}

func (s *ClientSuite) TestPluralCategory() {
	testCases := []struct {
		name     string
		query    intlbridge.PluralQuery
		expected intlbridge.Category
	}{
		{
			name:     "english cardinal one",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralCardinal, Number: 1},
			expected: intlbridge.CategoryOne,
		},
		{
			name:     "english cardinal two",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralCardinal, Number: 2},
			expected: intlbridge.CategoryOther,
		},
		{
			name:     "english ordinal first",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralOrdinal, Number: 1},
			expected: intlbridge.CategoryOne,
		},
		{
			name:     "english ordinal second",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralOrdinal, Number: 2},
			expected: intlbridge.CategoryTwo,
		},
		{
			name:     "english ordinal third",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralOrdinal, Number: 3},
			expected: intlbridge.CategoryFew,
		},
		{
			name:     "english ordinal fourth",
			query:    intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralOrdinal, Number: 4},
			expected: intlbridge.CategoryOther,
		},
		{
			name:     "kind defaults to cardinal",
			query:    intlbridge.PluralQuery{Language: "en", Number: 1},
			expected: intlbridge.CategoryOne,
		},
		{
			name:     "invalid language degrades to other",
			query:    intlbridge.PluralQuery{Language: "!!", Kind: intlbridge.PluralCardinal, Number: 1},
			expected: intlbridge.CategoryOther,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, intlbridge.PluralCategory(context.Background(), s.host, tc.query))
		})
	}
}

func (s *ClientSuite) TestPluralCategoryNormalizesUnknownTokens() {
	weird := intlbridge.HandleFunc(func(_ context.Context, _ string) (string, bool) {
		return "plenty", true
	})

	category := intlbridge.PluralCategory(context.Background(), weird,
		intlbridge.PluralQuery{Language: "en", Kind: intlbridge.PluralCardinal, Number: 3})
	s.Equal(intlbridge.CategoryOther, category)
}

func (s *ClientSuite) TestFormatNumber() {
	ctx := context.Background()

	currencyResult := intlbridge.FormatNumber(ctx, s.host, intlbridge.NumberQuery{
		Language: "en-US",
		Options:  map[string]any{"style": "currency", "currency": "EUR"},
		Number:   10,
	})
	s.Contains(currencyResult, "€")
	s.Contains(currencyResult, "10.00")

	ungrouped := intlbridge.FormatNumber(ctx, s.host, intlbridge.NumberQuery{
		Language: "en-US",
		Options:  map[string]any{"useGrouping": false},
		Number:   1234567,
	})
	s.Equal("1234567", ungrouped)

	grouped := intlbridge.FormatNumber(ctx, s.host, intlbridge.NumberQuery{
		Language: "en-US",
		Number:   1234567,
	})
	s.Equal("1,234,567", grouped)
}

func (s *ClientSuite) TestFormatNumberFailureIsEmptyString() {
	ctx := context.Background()

	s.Empty(intlbridge.FormatNumber(ctx, s.host, intlbridge.NumberQuery{
		Language: "en",
		Options:  map[string]any{"style": "currency"},
		Number:   10,
	}))

	s.Empty(intlbridge.FormatNumber(ctx, nil, intlbridge.NumberQuery{Language: "en", Number: 1}))
}

func (s *ClientSuite) TestFormatDateTime() {
	ctx := context.Background()

	query := intlbridge.DateTimeQuery{
		Language:    "en",
		Options:     map[string]any{"dateStyle": "long", "timeZone": "UTC"},
		EpochMillis: 1788098709000,
	}

	first := intlbridge.FormatDateTime(ctx, s.host, query)
	second := intlbridge.FormatDateTime(ctx, s.host, query)

	s.Equal("August 30, 2026", first)
	s.Equal(first, second, "identical inputs must format identically")
}

func (s *ClientSuite) TestFormatDateTimeFailureIsEmptyString() {
	s.Empty(intlbridge.FormatDateTime(context.Background(), s.host, intlbridge.DateTimeQuery{
		Language:    "en",
		Options:     map[string]any{"timeZone": "Not/AZone"},
		EpochMillis: 1788098709000,
	}))
}

func (s *ClientSuite) TestRaw() {
	ctx := context.Background()

	result, ok := intlbridge.Raw(ctx, s.host, `["PluralRules",["en",{"type":"ordinal"}],"select",[21]]`)
	s.Require().True(ok)
	s.Equal("one", result)

	_, ok = intlbridge.Raw(ctx, s.host, "garbage")
	s.False(ok)

	_, ok = intlbridge.Raw(ctx, nil, `["PluralRules",["en"],"select",[1]]`)
	s.False(ok)
}

func (s *ClientSuite) TestTypedOperationsMatchRawDispatch() {
	ctx := context.Background()

	var captured string
	spy := intlbridge.HandleFunc(func(spyCtx context.Context, key string) (string, bool) {
		captured = key
		return s.host.Lookup(spyCtx, key)
	})

	category := intlbridge.PluralCategory(ctx, spy, intlbridge.PluralQuery{
		Language: "en", Kind: intlbridge.PluralOrdinal, Number: 2,
	})
	s.Equal(intlbridge.CategoryTwo, category)
	s.Equal(`["PluralRules",["en",{"type":"ordinal"}],"select",[2]]`, captured)

	category = intlbridge.PluralCategory(ctx, spy, intlbridge.PluralQuery{
		Language: "en", Kind: intlbridge.PluralCardinal, Number: 2,
	})
	s.Equal(intlbridge.CategoryOther, category)
	s.False(strings.Contains(captured, "ordinal"), "cardinal requests must omit the type marker entirely")
	s.Equal(`["PluralRules",["en"],"select",[2]]`, captured)
}
