package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	fixer "github.com/dusanm/fixer-cli"
	"github.com/dusanm/fixer-cli/console"
)

type mockExchanger struct {
	mock.Mock
}

func (m *mockExchanger) Symbols(ctx context.Context) (fixer.SymbolsResponse, error) {
	args := m.Called(ctx)

	return args.Get(0).(fixer.SymbolsResponse), args.Error(1)
}

func (m *mockExchanger) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (fixer.ConvertResponse, error) {
	args := m.Called(ctx, from, to, amount)

	return args.Get(0).(fixer.ConvertResponse), args.Error(1)
}

func (m *mockExchanger) Latest(ctx context.Context, base string, symbols []string) (fixer.LatestResponse, error) {
	args := m.Called(ctx, base, symbols)

	return args.Get(0).(fixer.LatestResponse), args.Error(1)
}

func TestConsole_Symbols(t *testing.T) {
	t.Parallel()

	t.Run("EveryPairPrintedOnce", func(t *testing.T) {
		asserts := require.New(t)
		exchanger := &mockExchanger{}
		exchanger.On("Symbols", mock.Anything).Return(fixer.SymbolsResponse{
			Status: fixer.Status{Success: true},
			Symbols: map[string]string{
				"USD": "United States Dollar",
				"EUR": "Euro",
				"RSD": "Serbian Dinar",
			},
		}, nil)

		out := &bytes.Buffer{}
		c := console.Console{Exchanger: exchanger, Out: out}

		asserts.Nil(c.Symbols(context.Background()))

		printed := out.String()
		asserts.Equal(1, strings.Count(printed, "EUR: Euro"))
		asserts.Equal(1, strings.Count(printed, "RSD: Serbian Dinar"))
		asserts.Equal(1, strings.Count(printed, "USD: United States Dollar"))
		asserts.True(strings.Index(printed, "EUR") < strings.Index(printed, "RSD"))
		asserts.True(strings.Index(printed, "RSD") < strings.Index(printed, "USD"))
		exchanger.AssertExpectations(t)
	})

	t.Run("FailureWithoutMessage", func(t *testing.T) {
		asserts := require.New(t)
		exchanger := &mockExchanger{}
		exchanger.On("Symbols", mock.Anything).Return(fixer.SymbolsResponse{}, nil)

		out := &bytes.Buffer{}
		c := console.Console{Exchanger: exchanger, Out: out}

		asserts.Nil(c.Symbols(context.Background()))
		asserts.Contains(out.String(), "Error while accessing symbols")
	})

	t.Run("TransportErrorPropagates", func(t *testing.T) {
		asserts := require.New(t)
		expected := errors.New("connection refused")
		exchanger := &mockExchanger{}
		exchanger.On("Symbols", mock.Anything).Return(fixer.SymbolsResponse{}, expected)

		c := console.Console{Exchanger: exchanger, Out: &bytes.Buffer{}}

		asserts.True(errors.Is(c.Symbols(context.Background()), expected))
	})
}

func TestConsole_Convert(t *testing.T) {
	t.Parallel()

	t.Run("SuccessfulConversion", func(t *testing.T) {
		asserts := require.New(t)
		amount := decimal.RequireFromString("10")
		exchanger := &mockExchanger{}
		exchanger.On("Convert", mock.Anything, "EUR", "RSD", amount).Return(fixer.ConvertResponse{
			Status: fixer.Status{Success: true},
			Query:  fixer.ConvertQuery{From: "EUR", To: "RSD", Amount: amount},
			Date:   "2026-08-23",
			Result: decimal.RequireFromString("1174"),
		}, nil)

		out := &bytes.Buffer{}
		c := console.Console{Exchanger: exchanger, Out: out}

		asserts.Nil(c.Convert(context.Background(), "EUR", "RSD", amount))
		asserts.Contains(out.String(), "10 EUR ----> 1174 RSD")
		exchanger.AssertExpectations(t)
	})

	t.Run("ServerMessageSurfacedVerbatim", func(t *testing.T) {
		asserts := require.New(t)
		amount := decimal.RequireFromString("10")
		exchanger := &mockExchanger{}
		exchanger.On("Convert", mock.Anything, "XXX", "RSD", amount).Return(fixer.ConvertResponse{
			Status: fixer.Status{Message: "Invalid currency code provided. [Example: from=EUR]"},
		}, nil)

		out := &bytes.Buffer{}
		c := console.Console{Exchanger: exchanger, Out: out}

		asserts.Nil(c.Convert(context.Background(), "XXX", "RSD", amount))
		asserts.Contains(out.String(), "Invalid currency code provided. [Example: from=EUR]")
	})

	t.Run("FallbackWhenNoMessage", func(t *testing.T) {
		asserts := require.New(t)
		amount := decimal.RequireFromString("10")
		exchanger := &mockExchanger{}
		exchanger.On("Convert", mock.Anything, "EUR", "RSD", amount).
			Return(fixer.ConvertResponse{}, nil)

		out := &bytes.Buffer{}
		c := console.Console{Exchanger: exchanger, Out: out}

		asserts.Nil(c.Convert(context.Background(), "EUR", "RSD", amount))
		asserts.Contains(out.String(), "An unknown error occurred")
	})
}

func TestConsole_Rates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	exchanger := &mockExchanger{}
	exchanger.On("Latest", mock.Anything, "EUR", []string{"RSD", "USD"}).Return(fixer.LatestResponse{
		Status: fixer.Status{Success: true},
		Base:   "EUR",
		Date:   "2026-08-23",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.17"),
			"RSD": decimal.RequireFromString("117.4"),
		},
	}, nil)

	out := &bytes.Buffer{}
	c := console.Console{Exchanger: exchanger, Out: out}

	asserts.Nil(c.Rates(context.Background(), "EUR", []string{"RSD", "USD"}))

	printed := out.String()
	asserts.Contains(printed, "Base: EUR\tDate: 2026-08-23")
	asserts.Contains(printed, "RSD: 117.4")
	asserts.Contains(printed, "USD: 1.17")
	asserts.True(strings.Index(printed, "RSD: 117.4") < strings.Index(printed, "USD: 1.17"))
	exchanger.AssertExpectations(t)
}
