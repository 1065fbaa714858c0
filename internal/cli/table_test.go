package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Type", "Colour", "Swatch"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Type", "Colour"})

	table.AddRow([]string{"accent", "#e91e63"})
	table.AddRow([]string{"surface"})
	table.AddRow([]string{"primary", "#3f51b5", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated, got %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Type", "Colour"})
	table.AddRow([]string{"background", "#121212"})
	table.AddRow([]string{"tint-accent-dark", "#f8bbd0"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), table.Render())
	}

	if !strings.HasPrefix(lines[1], strings.Repeat("-", len("tint-accent-dark"))+"  ") {
		t.Errorf("Separator should match widest cell, got %q", lines[1])
	}

	// Second column starts at the same offset in every row.
	want := strings.Index(lines[0], "Colour")
	for _, line := range lines[2:] {
		if got := strings.Index(line, "#"); got != want {
			t.Errorf("Column misaligned in %q: offset %d, want %d", line, got, want)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty render, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 3, "abcdef"},
		{"\x1b[41m  \x1b[0m", 4, "\x1b[41m  \x1b[0m  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
