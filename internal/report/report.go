// Package report renders month statuses as terminal tables.
package report

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/vrmiguel/porquinho/internal/model"
	"github.com/vrmiguel/porquinho/internal/status"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Formatter prints amounts. With an empty Currency amounts are plain
// numbers with two decimals.
type Formatter struct {
	Currency string
}

// Amount formats d for display.
func (f Formatter) Amount(d decimal.Decimal) string {
	if f.Currency == "" {
		return d.StringFixed(2)
	}
	cur := *money.New(0, f.Currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinor) {
		return d.StringFixed(int32(cur.Fraction))
	}
	return cur.Formatter().Format(minor.IntPart())
}

// Renderer writes tables to Out.
type Renderer struct {
	Out    io.Writer
	Format Formatter
}

// Status prints the month summary, followed by every operation when
// detailed is set.
func (r Renderer) Status(st *status.Status, detailed bool) error {
	if err := r.Summary(st); err != nil {
		return err
	}
	if !detailed {
		return nil
	}
	return r.Operations(st)
}

// Summary prints one row with the month's totals.
func (r Renderer) Summary(st *status.Status) error {
	headers := []string{"Month", "Incoming", "Outgoing", "Balance"}
	row := []string{
		st.Month,
		r.Format.Amount(st.PutTotal),
		r.Format.Amount(st.TakeTotal),
		r.Format.Amount(st.Balance()),
	}
	if st.Target != nil {
		headers = append(headers, "Target")
		row = append(row, r.Format.Amount(decimal.NewFromInt(*st.Target)))
	}
	return r.write(newTable(headers, 1, 2, 3, 4).Row(row...))
}

// Operations prints every entry of the month ordered by day, debits first.
func (r Renderer) Operations(st *status.Status) error {
	entries := slices.Clone(st.All)
	slices.SortStableFunc(entries, func(a, b model.Entry) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})

	t := newTable([]string{"day", "op", "amount", "description"}, 0, 2)
	for _, e := range entries {
		t.Row(
			fmt.Sprintf("%2d", e.Day),
			e.Kind.Key(),
			r.Format.Amount(e.Amount),
			e.Description,
		)
	}
	return r.write(t)
}

// Summaries prints one row per month and a final row with the totals.
func (r Renderer) Summaries(all []*status.Status) error {
	t := newTable([]string{"Month", "Incoming", "Outgoing", "Balance"}, 1, 2, 3)
	for _, st := range all {
		t.Row(st.Month, r.Format.Amount(st.PutTotal), r.Format.Amount(st.TakeTotal), r.Format.Amount(st.Balance()))
	}

	put, take := status.Totals(all)
	t.Row("total", r.Format.Amount(put), r.Format.Amount(take), r.Format.Amount(put.Sub(take)))
	return r.write(t)
}

// Months prints the stored month names, one per line.
func (r Renderer) Months(names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(r.Out, n); err != nil {
			return err
		}
	}
	return nil
}

func (r Renderer) write(t *table.Table) error {
	_, err := fmt.Fprintln(r.Out, t.Render())
	return err
}

// newTable builds a table whose numeric columns are right aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case slices.Contains(numeric, col):
				return numberStyle
			}
			return cellStyle
		})
}
