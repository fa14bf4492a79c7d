package quoter

import (
	"fmt"
	"io"
)

func writeList(w io.Writer, sections []Section) error {
	for _, s := range sections {
		if _, err := fmt.Fprintln(w, s.Text); err != nil {
			return err
		}
	}
	return nil
}
