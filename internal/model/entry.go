package model

import (
	"github.com/shopspring/decimal"
)

// Kind is the direction of an entry.
type Kind int

// Debit sorts before Credit when entries share a day.
const (
	Debit  Kind = iota // money going out ("take")
	Credit             // money coming in ("put")
)

// Symbol returns the one-character marker used in entry lines.
func (k Kind) Symbol() string {
	if k == Credit {
		return "+"
	}
	return "-"
}

// Key returns the store list that holds entries of this kind.
func (k Kind) Key() string {
	if k == Credit {
		return "put"
	}
	return "take"
}

func (k Kind) String() string {
	return k.Key()
}

// Entry is one recorded transaction of a month.
type Entry struct {
	Day         uint8
	Kind        Kind
	Amount      decimal.Decimal // never negative
	Description string
}

// Equal reports whether two entries hold the same values.
// Amounts are compared numerically, so 6.00 equals 6.000.
func (e Entry) Equal(o Entry) bool {
	return e.Day == o.Day &&
		e.Kind == o.Kind &&
		e.Amount.Equal(o.Amount) &&
		e.Description == o.Description
}
