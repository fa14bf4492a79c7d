package quoter

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result is the ordered list of sections produced by [Quoter.Parse].
// It shares nothing with the quoter that produced it.
type Result struct {
	sections []Section
}

// NewResult builds a Result from sections, for example ones decoded from
// JSON. The slice is copied.
func NewResult(sections ...Section) Result {
	return Result{sections: slices.Clone(sections)}
}

// Len returns the number of sections.
func (r Result) Len() int { return len(r.sections) }

// At returns the i-th section. It panics if i is out of range.
func (r Result) At(i int) Section { return r.sections[i] }

// Sections returns a copy of the sections.
func (r Result) Sections() []Section { return slices.Clone(r.sections) }

// All iterates over the sections with their positions.
func (r Result) All() iter.Seq2[int, Section] {
	return slices.All(r.sections)
}

// Filter iterates over the sections of kind k.
func (r Result) Filter(k Kind) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		for _, s := range r.sections {
			if s.Kind == k && !yield(s) {
				return
			}
		}
	}
}

// String reassembles the parsed input exactly, quotes included.
func (r Result) String() string {
	var sb strings.Builder
	for _, s := range r.sections {
		sb.WriteString(s.Raw())
	}
	return sb.String()
}

// Join concatenates section text without quotes. Quoted content is left out
// unless includeQuoted is set.
func (r Result) Join(includeQuoted bool) string {
	var sb strings.Builder
	for _, s := range r.sections {
		if s.IsQuoted() && !includeQuoted {
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// QuotedTexts returns the content of every quoted section.
func (r Result) QuotedTexts() []string {
	var out []string
	for s := range r.Filter(Quoted) {
		out = append(out, s.Text)
	}
	return out
}

// Explode splits the result on delim. With includeQuoted set, quoted
// sections are kept verbatim, quotes included, and only delimiters outside
// quotes split. Otherwise quoted sections are dropped and the remaining text
// is joined before splitting, so a delimiter may span a dropped section. An
// empty delim yields a single piece.
func (r Result) Explode(delim string, includeQuoted bool) []string {
	return r.ExplodeN(delim, includeQuoted, -1)
}

// ExplodeN is like [Result.Explode] but returns at most n pieces; the last
// piece holds the unsplit remainder. As with [strings.SplitN], n == 0
// returns nil and n < 0 means no limit.
func (r Result) ExplodeN(delim string, includeQuoted bool, n int) []string {
	if n == 0 {
		return nil
	}
	if !includeQuoted {
		if delim == "" {
			return []string{r.Join(false)}
		}
		return strings.SplitN(r.Join(false), delim, n)
	}
	var (
		pieces []string
		cur    strings.Builder
	)
	for _, s := range r.sections {
		if s.IsQuoted() {
			cur.WriteString(s.Raw())
			continue
		}
		text := s.Text
		for delim != "" && (n < 0 || len(pieces)+1 < n) {
			i := strings.Index(text, delim)
			if i < 0 {
				break
			}
			cur.WriteString(text[:i])
			pieces = append(pieces, cur.String())
			cur.Reset()
			text = text[i+len(delim):]
		}
		cur.WriteString(text)
	}
	return append(pieces, cur.String())
}

// MarshalJSON encodes the result as an array of sections.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.sections == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.sections)
}

// UnmarshalJSON decodes an array of sections.
func (r *Result) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.sections)
}

// MarshalYAML encodes the result as a sequence of sections.
func (r Result) MarshalYAML() (any, error) {
	if r.sections == nil {
		return []Section{}, nil
	}
	return r.sections, nil
}

// UnmarshalYAML decodes a sequence of sections.
func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&r.sections)
}
