package quoter

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, sections []Section) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for i, col := range sectionHeader {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(sectionAligns, i), html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>\n  <tbody>"); err != nil {
		return err
	}
	for i, s := range sections {
		if _, err := fmt.Fprintf(w, "    <tr class=%q>\n", s.Kind.String()); err != nil {
			return err
		}
		for j, cell := range s.row(i) {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(sectionAligns, j), html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  </tbody>\n</table>")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
