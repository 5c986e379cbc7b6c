package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"SELECTOR", "KIND"}, true)
	table.AddRow("login-form", "component")
	table.AddRow("panel", "directive")
	table.Render()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "SELECTOR") {
		t.Errorf("header line wrong: %q", lines[0])
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("separator line wrong: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "login-form") {
		t.Errorf("row order wrong: %q", lines[2])
	}
}

func TestTable_ColumnWidthFollowsLongestCell(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"A", "B"}, true)
	table.AddRow("a-much-longer-cell", "x")
	table.Render()

	lines := strings.Split(buf.String(), "\n")
	// Header cell is padded to the widest cell in the column.
	if !strings.HasPrefix(lines[0], "A"+strings.Repeat(" ", len("a-much-longer-cell")-1)) {
		t.Errorf("header not padded to column width: %q", lines[0])
	}
}

func TestTable_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, nil, true)
	table.AddRow("ignored")
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("expected no output without headers, got %q", buf.String())
	}
}
