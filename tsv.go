package quoter

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func writeTSV(w io.Writer, sections []Section) error {
	if _, err := fmt.Fprintln(w, strings.Join(sectionHeader, "\t")); err != nil {
		return err
	}
	for i, s := range sections {
		if err := writeTSVRow(w, s.row(i)); err != nil {
			return err
		}
	}
	return nil
}

// writeTSVRow escapes tabs and line breaks so every section stays on one
// line.
func writeTSVRow(w io.Writer, row []string) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = tsvEscaper.Replace(cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
