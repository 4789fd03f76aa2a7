// Package export writes the log of what was sent to the presenters.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"scoreboard/internal/side"
)

// Push is one change sent to the presenters.
type Push struct {
	Time       time.Time
	Action     string
	Sides      side.Set
	Presenters int
	Text       string
}

var csvHeaders = []string{
	"date",
	"time",
	"action",
	"sides",
	"presenters",
	"text",
}

// WriteCSV writes pushes to a CSV file (semicolon-separated), creating it
// with headers if it doesn't exist or is empty, or appending rows if it does.
func WriteCSV(path string, pushes []Push) error {
	exists := hasContent(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, p := range pushes {
		row := []string{
			p.Time.Format("02.01.2006"),
			p.Time.Format("15:04:05"),
			p.Action,
			p.Sides.String(),
			strconv.Itoa(p.Presenters),
			p.Text,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// hasContent reports whether path is a non-empty file. A save dialog leaves
// an empty file behind, which still needs the header.
func hasContent(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
