package quoter

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, sections []Section) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if sections == nil {
		sections = []Section{}
	}
	if err := enc.Encode(sections); err != nil {
		return err
	}
	return enc.Close()
}
