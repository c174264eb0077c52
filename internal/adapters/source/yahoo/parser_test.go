package yahoo

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyTable(rows ...string) string {
	return fmt.Sprintf(`<html><body><table><tbody>%s</tbody></table></body></html>`, strings.Join(rows, "\n"))
}

func historyRow(cells ...string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, cell := range cells {
		fmt.Fprintf(&b, "<td>%s</td>", cell)
	}
	b.WriteString("</tr>")
	return b.String()
}

func TestParse_ValidRows(t *testing.T) {
	content := historyTable(
		historyRow("Jan 5, 2024", "105.2400", "106.1000", "104.9000", "105.8800", "105.8800", "1,234,567"),
		historyRow("Jan 4, 2024", "104.9000", "105.5000", "104.2000", "105.2400", "105.2400", "987,654"),
	)

	parser := NewParser(slog.Default())
	records, err := parser.Parse(content, "GBPINR=X")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "GBPINR=X", first.CurrencyPair)
	assert.Equal(t, "2024-01-05", first.Date)
	assert.Equal(t, 105.24, first.OpenRate)
	assert.Equal(t, 106.10, first.HighRate)
	assert.Equal(t, 104.90, first.LowRate)
	assert.Equal(t, 105.88, first.CloseRate)
	assert.Equal(t, 105.88, first.AdjClose)
	assert.Equal(t, int64(1234567), first.Volume)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestParse_RowFiltering(t *testing.T) {
	// 5 rows: 2 with placeholder volume (kept, volume 0), 1 with placeholder
	// close (dropped), 1 with a bad date (dropped), 1 fully valid.
	content := historyTable(
		historyRow("Jan 5, 2024", "105.0", "106.0", "104.0", "105.5", "105.5", "-"),
		historyRow("Jan 4, 2024", "104.0", "105.0", "103.0", "104.5", "104.5", "null"),
		historyRow("Jan 3, 2024", "103.0", "104.0", "102.0", "-", "103.5", "500"),
		historyRow("not a date", "102.0", "103.0", "101.0", "102.5", "102.5", "400"),
		historyRow("Jan 1, 2024", "101.0", "102.0", "100.0", "101.5", "101.5", "300"),
	)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	parser := NewParser(logger)
	records, err := parser.Parse(content, "GBPINR=X")
	require.NoError(t, err)
	require.Len(t, records, 3)

	withZeroVolume := 0
	for _, rec := range records {
		if rec.Volume == 0 {
			withZeroVolume++
		}
	}
	assert.Equal(t, 2, withZeroVolume)

	// Skips are diagnosed, not fatal.
	logged := buf.String()
	assert.Contains(t, logged, "placeholder price field")
	assert.Contains(t, logged, "unparsable date")
}

func TestParse_PlaceholderTokens(t *testing.T) {
	for _, token := range []string{"-", "null", "None", ""} {
		t.Run("close "+token, func(t *testing.T) {
			content := historyTable(
				historyRow("Jan 5, 2024", "105.0", "106.0", "104.0", token, "105.5", "100"),
			)
			parser := NewParser(nil)
			records, err := parser.Parse(content, "GBPINR=X")
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestParse_NoStructurallyValidRows(t *testing.T) {
	parser := NewParser(nil)

	// No table rows at all.
	_, err := parser.Parse("<html><body><p>maintenance</p></body></html>", "GBPINR=X")
	assert.ErrorIs(t, err, apperrors.ErrNoRowsFound)

	// Rows exist but none has the 7 positional fields.
	content := historyTable(
		historyRow("Jan 5, 2024", "105.0"),
		historyRow("Jan 4, 2024", "104.0", "105.0"),
	)
	_, err = parser.Parse(content, "GBPINR=X")
	assert.ErrorIs(t, err, apperrors.ErrNoRowsFound)
}

func TestParse_AllRowsInvalidIsNotAnError(t *testing.T) {
	// Structurally valid rows that all fail validation yield an empty result,
	// not ErrNoRowsFound, so callers can tell a format change apart from an
	// empty range.
	content := historyTable(
		historyRow("Jan 5, 2024", "-", "106.0", "104.0", "105.5", "105.5", "100"),
		historyRow("bad date", "105.0", "106.0", "104.0", "105.5", "105.5", "100"),
	)

	parser := NewParser(nil)
	records, err := parser.Parse(content, "GBPINR=X")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_ExtraCellsAndSeparators(t *testing.T) {
	content := historyTable(
		historyRow("Dec 31, 2024", "1,105.00", "1,106.00", "1,104.00", "1,105.50", "1,105.50", "2,000", "extra"),
	)

	parser := NewParser(nil)
	records, err := parser.Parse(content, "EURINR=X")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-12-31", records[0].Date)
	assert.Equal(t, 1105.0, records[0].OpenRate)
	assert.Equal(t, int64(2000), records[0].Volume)
}
