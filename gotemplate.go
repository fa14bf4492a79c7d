package quoter

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, sections []Section) error {
	return streamGoTemplate(w, tmplStr, slices.Values(sections))
}

func streamGoTemplate(w io.Writer, tmplStr string, seq iter.Seq[Section]) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for s := range seq {
		if err := tmpl.Execute(w, s); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
