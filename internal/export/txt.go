package export

import (
	"fmt"
	"os"
	"strings"
)

// FormatPush returns a one-line description of a push.
func FormatPush(p Push) string {
	line := fmt.Sprintf("%s  %-14s %-16s -> %d presenter(s)",
		p.Time.Format("2006-01-02 15:04:05"), p.Action, p.Sides, p.Presenters)
	if text := strings.TrimSpace(p.Text); text != "" {
		line += "  " + strings.ReplaceAll(text, "\n", " / ")
	}
	return line
}

// WriteTXT writes pushes to a text file, one line each.
func WriteTXT(path string, pushes []Push) error {
	var b strings.Builder
	for _, p := range pushes {
		b.WriteString(FormatPush(p))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
