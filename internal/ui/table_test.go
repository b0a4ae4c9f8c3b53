package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_Alignment(t *testing.T) {
	output := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "Buy milk"},
			{"b22", "Ship release"},
		},
	)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), output)
	}
	if !strings.HasPrefix(lines[1], "a1   ") {
		t.Errorf("expected padded first column, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Ship release") {
		t.Errorf("expected title in row, got %q", lines[2])
	}
}

func TestFormatTable_NormalizesNewlines(t *testing.T) {
	output := FormatTable([]string{"TITLE"}, [][]string{{"line1\nline2"}})
	if strings.Count(output, "\n") != 2 {
		t.Errorf("expected embedded newline normalized, got %q", output)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 1)
	builder.AddRow([]string{"x"})

	if got := builder.String(); !strings.Contains(got, "x") {
		t.Errorf("expected row rendered, got %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "short title"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("expected unchanged, got %q", got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis, got %q", got)
	}
	if displayWidth(got) != tableCellMaxWidth {
		t.Errorf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}
}

func TestTruncateTableCell_Multibyte(t *testing.T) {
	long := strings.Repeat("任", 80)
	got := TruncateTableCell(long)
	if displayWidth(got) != tableCellMaxWidth {
		t.Errorf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}
}

func TestTruncateTableCell_InvalidUTF8(t *testing.T) {
	long := "ab\xffcd" + strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if !strings.Contains(got, "\xff") {
		t.Errorf("expected raw byte preserved, got %q", got)
	}
	if strings.Contains(got, "�") {
		t.Errorf("expected no replacement rune, got %q", got)
	}
}

func TestDisplayWidth_IgnoresANSI(t *testing.T) {
	styled := ansiBold + "abc" + ansiReset
	if got := displayWidth(styled); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
}
