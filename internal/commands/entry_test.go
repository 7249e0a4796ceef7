package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmiguel/porquinho/internal/model"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.Local) }
}

func TestNewEntry(t *testing.T) {
	a := &app{now: fixedClock(2024, time.October, 22)}

	e, err := newEntry(a, model.Credit, "5.00", "  Salary ")
	require.NoError(t, err)
	assert.Equal(t, uint8(22), e.Day)
	assert.Equal(t, model.Credit, e.Kind)
	assert.Equal(t, "5.00", e.Amount.StringFixed(2))
	assert.Equal(t, "Salary", e.Description)
}

func TestNewEntry_Invalid(t *testing.T) {
	a := &app{now: fixedClock(2024, time.October, 22)}

	_, err := newEntry(a, model.Debit, "NaN", "Pi")
	require.Error(t, err)

	_, err = newEntry(a, model.Debit, "-1", "Refund")
	require.Error(t, err)

	_, err = newEntry(a, model.Debit, "1", "   ")
	require.EqualError(t, err, "description must not be empty")
}

func TestRootCommand_FixedClock(t *testing.T) {
	dir := t.TempDir()
	a := &app{now: fixedClock(2024, time.March, 7)}
	root := newRootCommand(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--data-dir", filepath.Join(dir, "data"),
		"take", "12.30", "Groceries",
	})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "data", "03-2024"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "7 - 12.30 Groceries")
	assert.Contains(t, out.String(), "Updated")
	assert.Equal(t, logrus.InfoLevel, a.log.GetLevel())
}
