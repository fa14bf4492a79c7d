package quoter

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// WriteIter renders sections from an iterator, such as [Result.Filter], as
// they arrive. JSONL, CSV, TSV, List, Plain, Raw and GoTemplate write each
// section immediately. JSON is streamed as array elements. Table, Markdown,
// HTML and YAML collect the sections first because they need all of them
// for layout or encoding.
//
// Row numbers in row formats count the sections yielded by seq.
func WriteIter(w io.Writer, f Format, seq iter.Seq[Section]) error {
	switch f {
	case JSON:
		return streamJSON(w, seq)
	case CSV:
		return streamRows(w, seq, writeCSVRow)
	case TSV:
		return streamRows(w, seq, writeTSVRow)
	case JSONL, List, Plain, Raw:
		return streamEach(w, f, seq)
	case YAML, Table, Markdown, HTML:
		return Write(w, f, slices.Collect(seq)...)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, seq)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan renders sections from a channel. It is a thin wrapper around
// [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan Section) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamEach(w io.Writer, f Format, seq iter.Seq[Section]) error {
	for s := range seq {
		if err := Write(w, f, s); err != nil {
			return err
		}
	}
	return nil
}

func streamRows(w io.Writer, seq iter.Seq[Section], writeRow func(io.Writer, []string) error) error {
	if err := writeRow(w, sectionHeader); err != nil {
		return err
	}
	i := 0
	for s := range seq {
		if err := writeRow(w, s.row(i)); err != nil {
			return err
		}
		i++
	}
	return nil
}

func streamJSON(w io.Writer, seq iter.Seq[Section]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	first := true
	for s := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
