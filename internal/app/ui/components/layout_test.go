package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"coinscope/internal/config"
)

func Test_RenderHeader(t *testing.T) {
	t.Run("contains title and info", func(t *testing.T) {
		result := RenderHeader(60, "Bitcoin", "#1 BTC")

		assert.Contains(t, result, "Bitcoin")
		assert.Contains(t, result, "#1 BTC")
	})

	t.Run("truncates long titles", func(t *testing.T) {
		result := RenderHeader(30, strings.Repeat("x", 50), "info")

		assert.Contains(t, result, "…")
		assert.Contains(t, result, "info")
	})
}

func Test_RenderTabs(t *testing.T) {
	result := RenderTabs([]string{"Overview", "Markets"}, 1)

	assert.Contains(t, result, "1 Overview")
	assert.Contains(t, result, "2 Markets")
}

func Test_RenderFooter(t *testing.T) {
	result := RenderFooter(40, "q quit")

	assert.Contains(t, result, "v"+config.Version)
	assert.Contains(t, result, "q quit")
}

func Test_RenderLine(t *testing.T) {
	assert.Equal(t, 5, lipgloss.Width(RenderLine(5)))
	assert.Equal(t, 0, lipgloss.Width(RenderLine(-1)))
}

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "empty string pad to 5", input: "", width: 5, expect: "     "},
		{name: "short string pad to 10", input: "hello", width: 10, expect: "hello     "},
		{name: "exact width no padding", input: "hello", width: 5, expect: "hello"},
		{name: "longer than width no change", input: "hello world", width: 5, expect: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "zero width", input: "hello", width: 0, expect: ""},
		{name: "fits", input: "hello", width: 5, expect: "hello"},
		{name: "one cell", input: "hello", width: 1, expect: "…"},
		{name: "shortened", input: "hello world", width: 6, expect: "hello…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.input, tt.width))
		})
	}
}
