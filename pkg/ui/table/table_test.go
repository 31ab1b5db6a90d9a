package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testData struct {
	rows [][]any
}

func (d testData) Header() []string { return []string{"NAME", "COUNT"} }
func (d testData) Len() int         { return len(d.rows) }
func (d testData) Row(i int) []any  { return d.rows[i] }

func TestTruncate(t *testing.T) {
	assert := assert.New(t)

	// Short strings pass through unchanged
	assert.Equal("hello", Truncate("hello", 10))
	assert.Equal("hello", Truncate("hello", 5))

	// Newlines are collapsed
	assert.Equal("line1 line2", Truncate("line1\nline2", 20))

	// Longer strings are shortened with a trailing ellipsis
	assert.Equal("abcd…", Truncate("abcdefghij", 5))

	// Truncation counts runes, not bytes
	assert.Equal("héllo…", Truncate("héllo wörld", 6))
}

func TestFormatCell(t *testing.T) {
	assert := assert.New(t)

	// Empty values render as a placeholder
	assert.Equal("-", FormatCell(nil))
	assert.Equal("-", FormatCell(""))
	assert.Equal("-", FormatCell(time.Time{}))
	assert.Equal("-", FormatCell(0))

	// Non-empty values render as strings
	assert.Equal("hello", FormatCell("hello"))
	assert.Equal("42", FormatCell(42))
	assert.Equal("true", FormatCell(true))
	assert.Equal("2026-01-02 15:04", FormatCell(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)))

	// Bold wrapping preserves the value text
	assert.Contains(FormatCell(Bold{Value: "name"}), "name")
	assert.Contains(FormatCell(Bold{Value: 7}), "7")
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	data := testData{rows: [][]any{
		{Bold{Value: "alpha"}, 3},
		nil,
		{"beta", 0},
	}}

	result := Render(data)
	assert.Contains(result, "NAME")
	assert.Contains(result, "COUNT")
	assert.Contains(result, "alpha")
	assert.Contains(result, "beta")

	// Empty trailing cell renders as a placeholder
	assert.Contains(result, "-")
}
