package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want time.Time
		ok   bool
	}{
		{
			name: "slash with short parts reads day first",
			cell: "05/04/2024",
			want: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso dash date",
			cell: "2024-04-05",
			want: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "day first even when unambiguous",
			cell: "25/12/2024",
			want: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "whitespace is trimmed",
			cell: "  01/04/2024 ",
			want: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "invalid calendar date rejected",
			cell: "31/02/2024",
			ok:   false,
		},
		{
			name: "non-date text",
			cell: "Total",
			ok:   false,
		},
		{
			name: "empty cell",
			cell: "",
			ok:   false,
		},
		{
			name: "generic long form",
			cell: "Apr 5, 2024",
			want: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLooksLikeDate(t *testing.T) {
	assert.True(t, LooksLikeDate("01/04/2024"))
	assert.True(t, LooksLikeDate("2024-04-01"))
	assert.False(t, LooksLikeDate("Total"))
	assert.False(t, LooksLikeDate(""))
	assert.False(t, LooksLikeDate("   "))
	assert.False(t, LooksLikeDate("01/04"))
}

func TestParseSortDate(t *testing.T) {
	// DD-MM-YYYY is reversed into ISO before parsing.
	got, ok := parseSortDate("15-03-2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	// Plain ISO still parses.
	got, ok = parseSortDate("2025-03-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	_, ok = parseSortDate("pending")
	assert.False(t, ok)
}
