package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReporter_LinesInOrder(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf)

	r.Section("Deploying ddl")
	r.Step("Executing %s", "scripts/dev/ddl/01.sql")
	r.Pass("statement 1")
	r.Fail("statement 2")
	r.Summary(false, "DEV deployment failed")

	out := buf.String()
	order := []string{"Deploying ddl", "Executing scripts/dev/ddl/01.sql", "statement 1", "statement 2", "DEV deployment failed"}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", want, out)
		assert.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}
}

func TestConsoleReporter_Symbols(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf)

	r.Pass("ORDERS.ID has no NULL values")
	r.Fail("ORDERS: 5 rows (minimum 10 required)")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], SymbolCheck)
	assert.Contains(t, lines[0], "ORDERS.ID has no NULL values")
	assert.Contains(t, lines[1], SymbolCross)
}

func TestConsoleReporter_SuccessSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf)

	r.Summary(true, "All data quality checks passed for DEV environment!")

	assert.Contains(t, buf.String(), SymbolCheck+" All data quality checks passed for DEV environment!")
}

func TestNullReporter_DiscardsOutput(t *testing.T) {
	r := NewNullReporter()
	assert.NotPanics(t, func() {
		r.Section("x")
		r.Step("%d", 1)
		r.Pass("p")
		r.Fail("f")
		r.Summary(true, "done")
	})
}
