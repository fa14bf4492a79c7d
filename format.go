package quoter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Sentinel errors for rendering.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format is an output format for sections.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	List     Format = "list"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	JSONL    Format = "jsonl"
	HTML     Format = "html"
	Raw      Format = "raw"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, YAML, CSV, Table, Markdown, List, Plain, TSV, JSONL, HTML, Raw}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	return slices.Clone(formats)
}

// GoTemplate returns a Format that executes a Go text/template against
// each [Section] and writes it on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders sections in format f to w.
//
//   - JSON, YAML: an array of section objects
//   - JSONL: one section object per line
//   - CSV, TSV, Table, Markdown, HTML: one row per section under a header
//   - List: section text, one per line
//   - Plain: the debug form of each section, one per line
//   - Raw: the reassembled input
func Write(w io.Writer, f Format, sections ...Section) error {
	switch f {
	case JSON:
		return writeJSON(w, sections)
	case YAML:
		return writeYAML(w, sections)
	case CSV:
		return writeCSV(w, sections, ',')
	case TSV:
		return writeTSV(w, sections)
	case Table:
		return WriteTable(w, TableOptions{}, sections...)
	case Markdown:
		return writeMarkdown(w, sections)
	case HTML:
		return writeHTML(w, sections)
	case List:
		return writeList(w, sections)
	case Plain:
		return writePlain(w, sections)
	case JSONL:
		return writeJSONL(w, sections)
	case Raw:
		return writeRaw(w, sections)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, sections)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders sections in format f and returns the bytes.
func Marshal(f Format, sections ...Section) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, sections...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the result in format f to w.
func (r Result) Write(w io.Writer, f Format) error {
	return Write(w, f, r.sections...)
}

// Marshal renders the result in format f and returns the bytes.
func (r Result) Marshal(f Format) ([]byte, error) {
	return Marshal(f, r.sections...)
}

func writeRaw(w io.Writer, sections []Section) error {
	for _, s := range sections {
		if _, err := io.WriteString(w, s.Raw()); err != nil {
			return err
		}
	}
	return nil
}
