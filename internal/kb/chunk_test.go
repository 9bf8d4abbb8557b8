package kb

import (
	"strings"
	"testing"
)

func TestSplitManual(t *testing.T) {
	text := "# หัวเรื่อง\n\n## หมวดแรก\n" + strings.Repeat("ก", 60) + "\n\n## สั้น\nขค\n\n## หมวดสอง\n" + strings.Repeat("ข", 60)

	chunks := SplitManual(text, "system_manual", 50)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2 (short section dropped)", len(chunks))
	}
	for _, c := range chunks {
		if !strings.HasPrefix(c.Text, "## ") {
			t.Errorf("chunk missing heading marker: %q", c.Text[:20])
		}
		if c.SourceFile != "system_manual" {
			t.Errorf("SourceFile = %q", c.SourceFile)
		}
		if c.PageNumber != 1 {
			t.Errorf("PageNumber = %d, want 1 for manual sections", c.PageNumber)
		}
	}
}

func TestSplitManualBuiltIn(t *testing.T) {
	chunks := SplitManual(SystemUsageManual, "system_manual", 50)
	if len(chunks) < 3 {
		t.Fatalf("built-in manual produced %d chunks, want at least 3", len(chunks))
	}
}

func TestWindowByLines(t *testing.T) {
	var lines []string
	for i := 0; i < 35; i++ {
		lines = append(lines, "บรรทัด")
	}
	text := strings.Join(lines, "\n")

	windows := windowByLines(text, 15)

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if strings.Contains(windows[0], "\n") {
		t.Error("window should join lines with spaces")
	}
	if got := len(strings.Fields(windows[2])); got != 5 {
		t.Errorf("last window has %d lines, want 5", got)
	}
}

func TestWindowByLinesSkipsBlankLines(t *testing.T) {
	windows := windowByLines("ก\n\n\nข\n  \nค", 15)
	if len(windows) != 1 || windows[0] != "ก ข ค" {
		t.Errorf("windows = %v", windows)
	}
}
