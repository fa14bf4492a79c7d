package quoter

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, sections []Section) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if sections == nil {
		sections = []Section{}
	}
	return enc.Encode(sections)
}
