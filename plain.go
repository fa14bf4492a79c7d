package quoter

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, sections []Section) error {
	for _, s := range sections {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}
