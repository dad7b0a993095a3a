package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEuro(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "€0"},
		{42, "€42"},
		{750, "€750"},
		{9525, "€9,525"},
		{19095, "€19,095"},
		{1234567, "€1,234,567"},
		{-1200, "-€1,200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Euro(tt.amount))
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdef12", TruncID("abcdef12-3456-7890-abcd-ef1234567890"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "--", HumanDate(time.Time{}))
	assert.Equal(t, "Jul 10, 2026", HumanDate(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"x", "y"}, {"wide cell", "z"}})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "wide cell")
	assert.Contains(t, out, "─")
}
