package quoter

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, sections []Section) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, s := range sections {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
