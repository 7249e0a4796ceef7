package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmiguel/porquinho/internal/book"
	"github.com/vrmiguel/porquinho/internal/status"
)

func mustStatus(t *testing.T, doc book.Document, month string) *status.Status {
	t.Helper()
	st, err := status.Aggregate(doc, month)
	require.NoError(t, err)
	return st
}

func october(t *testing.T) *status.Status {
	return mustStatus(t, book.Document{
		Put:  []string{"22 + 200.50 Payment", "22 + 300.25 Another Payment"},
		Take: []string{"23 - 10.25 Lunch", "23 - 10.27 Dinner", "2 - 400.00 Rent"},
	}, "10-2024")
}

func TestFormatter_Amount(t *testing.T) {
	plain := Formatter{}
	assert.Equal(t, "500.75", plain.Amount(decimal.RequireFromString("500.75")))
	assert.Equal(t, "6.00", plain.Amount(decimal.RequireFromString("6.000")))
	assert.Equal(t, "-319.77", plain.Amount(decimal.RequireFromString("-319.77")))

	usd := Formatter{Currency: "USD"}
	assert.Equal(t, "$1,234.50", usd.Amount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.13", usd.Amount(decimal.RequireFromString("0.125")))

	// Too large for minor units in an int64.
	huge := decimal.RequireFromString("100000000000000000000")
	assert.Equal(t, "100000000000000000000.00", usd.Amount(huge))
	assert.Equal(t, "-100000000000000000000.00", usd.Amount(huge.Neg()))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := Renderer{Out: &buf}
	require.NoError(t, r.Summary(october(t)))

	out := buf.String()
	for _, want := range []string{"Month", "Incoming", "Outgoing", "Balance", "10-2024", "500.75", "420.52", "80.23"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Target")
}

func TestSummary_Target(t *testing.T) {
	target := int64(1500)
	st := october(t)
	st.Target = &target

	var buf bytes.Buffer
	require.NoError(t, Renderer{Out: &buf}.Summary(st))
	assert.Contains(t, buf.String(), "Target")
	assert.Contains(t, buf.String(), "1500.00")
}

func TestOperations_Sorted(t *testing.T) {
	st := mustStatus(t, book.Document{
		Put:  []string{"5 + 1.00 Credit on five", "2 + 3.00 Credit on two"},
		Take: []string{"5 - 2.00 Debit on five"},
	}, "10-2024")

	var buf bytes.Buffer
	require.NoError(t, Renderer{Out: &buf}.Operations(st))
	out := buf.String()

	two := strings.Index(out, "Credit on two")
	debitFive := strings.Index(out, "Debit on five")
	creditFive := strings.Index(out, "Credit on five")
	require.True(t, two >= 0 && debitFive >= 0 && creditFive >= 0, out)
	assert.Less(t, two, debitFive)
	assert.Less(t, debitFive, creditFive, "debits come before credits on the same day")
	assert.Contains(t, out, "take")
	assert.Contains(t, out, "put")
}

func TestStatus_Detailed(t *testing.T) {
	var buf bytes.Buffer
	r := Renderer{Out: &buf}

	require.NoError(t, r.Status(october(t), false))
	assert.NotContains(t, buf.String(), "description")

	buf.Reset()
	require.NoError(t, r.Status(october(t), true))
	assert.Contains(t, buf.String(), "description")
	assert.Contains(t, buf.String(), "Another Payment")
}

func TestSummaries(t *testing.T) {
	nov := mustStatus(t, book.Document{Put: []string{"1 + 100 Bonus"}, Take: []string{"3 - 19.48 Books"}}, "11-2024")

	var buf bytes.Buffer
	require.NoError(t, Renderer{Out: &buf}.Summaries([]*status.Status{october(t), nov}))
	out := buf.String()

	assert.Contains(t, out, "10-2024")
	assert.Contains(t, out, "11-2024")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "600.75") // 500.75 + 100
	assert.Contains(t, out, "440.00") // 420.52 + 19.48
	assert.Contains(t, out, "160.75")
}

func TestSummaries_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{Out: &buf}.Summaries(nil))
	assert.Contains(t, buf.String(), "total")
	assert.Contains(t, buf.String(), "0.00")
}

func TestMonths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{Out: &buf}.Months([]string{"01-2025", "02-2025"}))
	assert.Equal(t, "01-2025\n02-2025\n", buf.String())
}
