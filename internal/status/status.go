// Package status totals the entries of a month.
package status

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vrmiguel/porquinho/internal/book"
	"github.com/vrmiguel/porquinho/internal/entry"
	"github.com/vrmiguel/porquinho/internal/model"
)

// Status is the read-only summary of one month.
type Status struct {
	Month     string
	TakeTotal decimal.Decimal
	PutTotal  decimal.Decimal
	All       []model.Entry // take entries first, then put, in file order
	Take      []model.Entry
	Put       []model.Entry
	Target    *int64
}

// Balance is what came in minus what went out.
func (s *Status) Balance() decimal.Decimal {
	return s.PutTotal.Sub(s.TakeTotal)
}

// Aggregate parses every line of doc and sums each side. One bad line fails
// the whole month.
func Aggregate(doc book.Document, month string) (*Status, error) {
	st := &Status{
		Month:     month,
		TakeTotal: decimal.Zero,
		PutTotal:  decimal.Zero,
		Target:    doc.Target,
	}

	lists := []struct {
		key   string
		lines []string
	}{
		{"take", doc.Take},
		{"put", doc.Put},
	}
	for _, list := range lists {
		for i, line := range list.lines {
			e, err := entry.Parse(line)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", month, list.key, i, err)
			}
			st.add(e)
		}
	}
	return st, nil
}

// FromBook aggregates a loaded book.
func FromBook(b *book.Book) (*Status, error) {
	return Aggregate(b.Doc, b.Month)
}

func (s *Status) add(e model.Entry) {
	s.All = append(s.All, e)
	if e.Kind == model.Credit {
		s.Put = append(s.Put, e)
		s.PutTotal = s.PutTotal.Add(e.Amount)
		return
	}
	s.Take = append(s.Take, e)
	s.TakeTotal = s.TakeTotal.Add(e.Amount)
}

// Totals sums several months.
func Totals(all []*Status) (put, take decimal.Decimal) {
	put, take = decimal.Zero, decimal.Zero
	for _, s := range all {
		put = put.Add(s.PutTotal)
		take = take.Add(s.TakeTotal)
	}
	return put, take
}
