package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintRaw(t *testing.T) {
	body := "{\"a\":1}\n{\"b\":2}\n"
	output := captureStdout(t, func() { PrintRaw(body) })
	if output != body {
		t.Errorf("PrintRaw() output = %q, want %q", output, body)
	}
}

func TestPrintRawAddsTrailingNewline(t *testing.T) {
	output := captureStdout(t, func() { PrintRaw("{\"a\":1}") })
	if output != "{\"a\":1}\n" {
		t.Errorf("PrintRaw() output = %q, want trailing newline", output)
	}
}

func TestPrintRawEmpty(t *testing.T) {
	output := captureStdout(t, func() { PrintRaw("") })
	if output != "" {
		t.Errorf("PrintRaw() output = %q, want empty", output)
	}
}

func TestPrintNDJSON(t *testing.T) {
	body := "{\"outcome\":\"ok\",\"status\":200}\n{\"outcome\":\"exception\",\"status\":500}\n"
	output := captureStdout(t, func() { PrintNDJSON(body) })

	if !strings.Contains(output, "  \"outcome\": \"ok\"") {
		t.Errorf("PrintNDJSON() output not indented: %q", output)
	}
	if got := strings.Count(output, "\"outcome\""); got != 2 {
		t.Errorf("PrintNDJSON() emitted %d records, want 2", got)
	}
}

func TestPrintNDJSONSkipsMalformedLines(t *testing.T) {
	body := "{\"a\":1}\nnot json at all\n{\"b\":2}\n"
	output := captureStdout(t, func() { PrintNDJSON(body) })

	if !strings.Contains(output, "\"a\": 1") {
		t.Errorf("PrintNDJSON() dropped record before malformed line: %q", output)
	}
	if !strings.Contains(output, "\"b\": 2") {
		t.Errorf("PrintNDJSON() did not continue past malformed line: %q", output)
	}
	if strings.Contains(output, "not json") {
		t.Errorf("PrintNDJSON() emitted malformed line to stdout: %q", output)
	}
}

func TestPrintNDJSONIgnoresBlankLines(t *testing.T) {
	body := "\n{\"a\":1}\n\n\n"
	output := captureStdout(t, func() { PrintNDJSON(body) })

	if got := strings.Count(output, "\"a\""); got != 1 {
		t.Errorf("PrintNDJSON() emitted %d records, want 1", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"Zero bytes", 0, "0 B"},
		{"Bytes", 500, "500 B"},
		{"Kilobytes", 1500, "1.5 KB"},
		{"Megabytes", 1500000, "1.4 MB"},
		{"Gigabytes", 1500000000, "1.4 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBytes(tt.bytes)
			if result != tt.expected {
				t.Errorf("FormatBytes(%d) = %s, want %s", tt.bytes, result, tt.expected)
			}
		})
	}
}
