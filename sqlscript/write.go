package sqlscript

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/hlubek/stockseed/randsrc"
)

const (
	rule           = "-- ========================================"
	headerTimeForm = "02/01/2006 15:04:05"
)

// Header describes the run that produced a script.
type Header struct {
	GeneratedAt time.Time
	Seeds       randsrc.Seeds
}

// BatchID derives a stable identifier for a seed triple.
func BatchID(seeds randsrc.Seeds) uuid.UUID {
	return uuid.NewV5(uuid.NamespaceOID, "stockseed:"+seeds.String())
}

// Write renders the full script: header block, one bannered section per
// group in the given order, and the closing banner.
func Write(w io.Writer, groups []Group, h Header) error {
	bw := bufio.NewWriter(w)

	lines := []string{
		rule,
		"-- SYNTHETIC DATA INSERT SCRIPT",
		"-- Inventory Control System",
		"-- Generated at: " + h.GeneratedAt.UTC().Format(headerTimeForm),
		"-- Batch: " + BatchID(h.Seeds).String(),
		"-- Seeds: " + h.Seeds.String(),
		rule,
		"",
		"-- IMPORTANT: run the statements in the order presented",
		"-- to respect the foreign keys!",
		"",
	}
	for _, g := range groups {
		lines = append(lines,
			rule,
			"-- INSERTS FOR TABLE "+strings.ToUpper(g.Table),
			rule,
			"",
		)
		lines = append(lines, g.Statements...)
		lines = append(lines, "")
	}
	lines = append(lines,
		rule,
		"-- END OF SCRIPT",
		rule,
	)

	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes the script to path, replacing any existing file.
func WriteFile(path string, groups []Group, h Header) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, groups, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
