package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Log lines can get large; the scanner default of 64KB is not enough.
const maxLineSize = 1024 * 1024

// PrintRaw writes the response body to stdout verbatim, ensuring a trailing
// newline so the shell prompt does not end up glued to the last record.
func PrintRaw(body string) {
	if body == "" {
		return
	}
	fmt.Print(body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Println()
	}
}

// PrintNDJSON re-serializes each newline-delimited JSON record with
// indentation. A malformed line is reported and skipped; it never aborts
// the remaining records.
func PrintNDJSON(body string) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record interface{}
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed record")
			continue
		}

		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("failed to re-serialize record")
			continue
		}
		fmt.Println(string(out))
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Msg("stopped scanning records")
	}
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
