package quoter

import (
	"fmt"
	"strconv"
)

// Kind tells quoted and unquoted sections apart.
type Kind int

const (
	Unquoted Kind = iota
	Quoted
)

// String returns "unquoted" or "quoted".
func (k Kind) String() string {
	switch k {
	case Unquoted:
		return "unquoted"
	case Quoted:
		return "quoted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Unquoted, Quoted:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidArgument, int(k))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unquoted":
		*k = Unquoted
	case "quoted":
		*k = Quoted
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidArgument, b)
	}
	return nil
}

// Section is one contiguous span of parsed input.
//
// Offset is the byte offset in the original input where Text begins; for a
// quoted section that is just past the opening quote. Open and Close hold
// the delimiters as they appear in the input, so they may differ in case
// from the registered quotes. Close is empty when the quote runs to the end
// of input.
type Section struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Offset int    `json:"offset" yaml:"offset"`
	Text   string `json:"text" yaml:"text"`
	Open   string `json:"open,omitempty" yaml:"open,omitempty"`
	Close  string `json:"close,omitempty" yaml:"close,omitempty"`
}

// IsQuoted reports whether s is a quoted section.
func (s Section) IsQuoted() bool { return s.Kind == Quoted }

// Terminated reports whether s is a quoted section with a closing quote.
func (s Section) Terminated() bool { return s.Kind == Quoted && s.Close != "" }

// Raw returns the section as it appears in the input, delimiters included.
func (s Section) Raw() string { return s.Open + s.Text + s.Close }

// Start returns the input offset of the first byte of Raw.
func (s Section) Start() int { return s.Offset - len(s.Open) }

// End returns the input offset just past Raw.
func (s Section) End() int { return s.Offset + len(s.Text) + len(s.Close) }

// String formats s for debugging, e.g. Quoted(9, "abc", "'", "'").
func (s Section) String() string {
	if s.Kind == Quoted {
		return fmt.Sprintf("Quoted(%d, %s, %s, %s)", s.Offset,
			strconv.Quote(s.Text), strconv.Quote(s.Open), strconv.Quote(s.Close))
	}
	return fmt.Sprintf("Unquoted(%d, %s)", s.Offset, strconv.Quote(s.Text))
}

var sectionHeader = []string{"#", "Kind", "Offset", "Open", "Text", "Close"}

// row returns the cells describing s at position i.
func (s Section) row(i int) []string {
	return []string{
		strconv.Itoa(i),
		s.Kind.String(),
		strconv.Itoa(s.Offset),
		s.Open,
		s.Text,
		s.Close,
	}
}
