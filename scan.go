package quoter

import "fmt"

// TieBreak decides which needle wins when two needles are found at the
// same offset.
type TieBreak int

const (
	// TieFirst prefers the needle listed first. For quotes this is
	// registration order.
	TieFirst TieBreak = iota
	// TieLongest prefers the longest needle, falling back to list order.
	TieLongest
)

var tieBreakNames = map[TieBreak]string{
	TieFirst:   "first",
	TieLongest: "longest",
}

// String returns the policy name.
func (t TieBreak) String() string {
	if name, ok := tieBreakNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// MarshalText implements [encoding.TextMarshaler].
func (t TieBreak) MarshalText() ([]byte, error) {
	name, ok := tieBreakNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: tie-break %d", ErrInvalidArgument, int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *TieBreak) UnmarshalText(b []byte) error {
	for k, name := range tieBreakNames {
		if name == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("%w: tie-break %q", ErrInvalidArgument, b)
}

// FindNext returns the offset of the earliest unescaped occurrence of any
// needle in haystack, and the needle found there. Needles are matched
// case-insensitively. When two needles start at the same offset the one
// listed first wins. FindNext returns (-1, "", nil) when nothing matches,
// and fails with [ErrInvalidNeedle] if any needle is empty.
func FindNext(haystack string, needles []string, marker string) (int, string, error) {
	for i, n := range needles {
		if n == "" {
			return -1, "", fmt.Errorf("%w: needle %d is empty", ErrInvalidNeedle, i)
		}
	}
	offset, needle := scan(haystack, needles, marker, TieFirst)
	return offset, needle, nil
}

// scan is FindNext without needle validation.
func scan(haystack string, needles []string, marker string, tie TieBreak) (int, string) {
	best, found := -1, ""
	for _, needle := range needles {
		at := nextUnescaped(haystack, needle, marker)
		if at < 0 {
			continue
		}
		switch {
		case best < 0 || at < best:
			best, found = at, needle
		case at == best && tie == TieLongest && len(needle) > len(found):
			found = needle
		}
	}
	return best, found
}

// nextUnescaped returns the first occurrence of needle not preceded by an
// odd run of escape markers.
func nextUnescaped(haystack, needle, marker string) int {
	for from := 0; ; {
		at := indexFold(haystack, needle, from)
		if at < 0 || !IsEscaped(haystack, at, marker) {
			return at
		}
		from = at + 1
	}
}
