package quoter

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, sections []Section, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(sectionHeader); err != nil {
		return err
	}
	for i, s := range sections {
		if err := cw.Write(s.row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVRow(w io.Writer, row []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
