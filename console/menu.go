package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const menuText = "\n########### MENU #################\n" +
	"## 1 - Available currencies.    ##\n" +
	"## 2 - Convert a currency.      ##\n" +
	"## 3 - Real-time exchange rate. ##\n" +
	"## 4 - Quit.                    ##\n" +
	"##################################\n" +
	"Choose in the menu: "

const invalidChoice = "Invalid input. Please enter a valid choice."

// ErrQuit stops the menu loop. It never escapes Run.
var ErrQuit = errors.New("quit")

type (
	handler func(ctx context.Context) error

	// Menu reads numbered choices from in and dispatches them to the
	// console actions until the user quits or input runs out.
	Menu struct {
		console Console
		scanner *bufio.Scanner
		out     io.Writer
		actions map[int]handler
	}
)

func NewMenu(console Console, in io.Reader) *Menu {
	m := &Menu{
		console: console,
		scanner: bufio.NewScanner(in),
		out:     console.Out,
	}

	m.actions = map[int]handler{
		1: m.symbols,
		2: m.convert,
		3: m.rates,
		4: m.quit,
	}

	return m
}

// Run loops until quit or EOF. A failed request is printed and the
// loop keeps going.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)

		line, ok := m.readLine()

		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))

		if err != nil {
			fmt.Fprintln(m.out, invalidChoice)
			continue
		}

		action, ok := m.actions[choice]

		if !ok {
			fmt.Fprintln(m.out, invalidChoice)
			continue
		}

		if err := action(ctx); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}

			fmt.Fprintf(m.out, "Request failed with error: %v\n", err)
		}
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}

	return m.scanner.Text(), true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)

	line, ok := m.readLine()

	return strings.TrimSpace(line), ok
}

func (m *Menu) symbols(ctx context.Context) error {
	return m.console.Symbols(ctx)
}

func (m *Menu) convert(ctx context.Context) error {
	from, ok := m.prompt("Enter the from currency: ")

	if !ok {
		return ErrQuit
	}

	to, ok := m.prompt("Enter the to currency: ")

	if !ok {
		return ErrQuit
	}

	raw, ok := m.prompt("Enter the amount: ")

	if !ok {
		return ErrQuit
	}

	amount, err := decimal.NewFromString(raw)

	if err != nil {
		fmt.Fprintf(m.out, "Invalid amount %q. Please enter a decimal number.\n", raw)
		return nil
	}

	return m.console.Convert(ctx, strings.ToUpper(from), strings.ToUpper(to), amount)
}

func (m *Menu) rates(ctx context.Context) error {
	base, ok := m.prompt("Enter the three-letter currency code of your preferred base currency: ")

	if !ok {
		return ErrQuit
	}

	raw, ok := m.prompt("Enter a list of comma-separated currency codes to limit output currencies: ")

	if !ok {
		return ErrQuit
	}

	var symbols []string

	for _, symbol := range strings.Split(raw, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, strings.ToUpper(symbol))
		}
	}

	return m.console.Rates(ctx, strings.ToUpper(base), symbols)
}

func (m *Menu) quit(context.Context) error {
	fmt.Fprintln(m.out, "See ya!!")

	return ErrQuit
}
