// Package entry reads and writes the one-line text form of a ledger entry:
//
//	<day> <+|-> <amount> <description>
//
// e.g. "22 + 5.00 Salary" or "12 - 6.000 Rent".
package entry

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/vrmiguel/porquinho/internal/model"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	Malformed ErrorKind = iota
	InvalidDay
	InvalidEntryType
	InvalidDecimal
	NoDescription
)

// ParseError reports why a line could not be read. Input holds the
// offending part of the line.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidDay:
		return fmt.Sprintf("'%s' is not a valid month day", e.Input)
	case InvalidEntryType:
		return fmt.Sprintf("'%s' is not a valid transaction type descriptor", e.Input)
	case InvalidDecimal:
		return fmt.Sprintf("'%s' could not be parsed as a decimal", e.Input)
	case NoDescription:
		return fmt.Sprintf("expected description after '%s'", e.Input)
	default:
		return fmt.Sprintf("malformed entry: '%s'", e.Input)
	}
}

// Parse reads a single entry line.
func Parse(line string) (model.Entry, error) {
	day, rest, err := parseDay(line)
	if err != nil {
		return model.Entry{}, err
	}

	kind, rest, err := parseKind(rest)
	if err != nil {
		return model.Entry{}, err
	}

	amount, rest, err := parseAmount(rest)
	if err != nil {
		return model.Entry{}, err
	}

	return model.Entry{
		Day:         day,
		Kind:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(rest),
	}, nil
}

// Format returns the canonical line for e. Parse(Format(e)) yields e.
func Format(e model.Entry) string {
	return fmt.Sprintf("%d %s %s %s", e.Day, e.Kind.Symbol(), FormatAmount(e.Amount), e.Description)
}

// FormatAmount prints d keeping the number of decimal places it was
// created with, so "6.000" is written back as "6.000".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// ParseAmount reads a non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, &ParseError{Kind: InvalidDecimal, Input: s}
	}
	return d, nil
}

func parseDay(input string) (uint8, string, error) {
	first, rest, ok := strings.Cut(strings.TrimSpace(input), " ")
	if !ok {
		return 0, "", &ParseError{Kind: Malformed, Input: input}
	}

	day, err := strconv.ParseUint(first, 10, 8)
	if err != nil || day < 1 || day > 31 {
		return 0, "", &ParseError{Kind: InvalidDay, Input: first}
	}
	return uint8(day), rest, nil
}

func parseKind(input string) (model.Kind, string, error) {
	r, size := utf8.DecodeRuneInString(input)
	switch r {
	case '+':
		return model.Credit, input[size:], nil
	case '-':
		return model.Debit, input[size:], nil
	}
	return 0, "", &ParseError{Kind: InvalidEntryType, Input: input[:size]}
}

// parseAmount checks for a description before validating the number, so a
// line that lacks both reports NoDescription.
func parseAmount(input string) (decimal.Decimal, string, error) {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)

	token, rest, ok := strings.Cut(input, " ")
	if !ok || strings.TrimSpace(rest) == "" {
		return decimal.Decimal{}, "", &ParseError{Kind: NoDescription, Input: input}
	}

	amount, err := ParseAmount(token)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	return amount, rest, nil
}
