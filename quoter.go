package quoter

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownQuote    = fmt.Errorf("%w: unknown quote", ErrInvalidArgument)
	ErrInvalidNeedle   = fmt.Errorf("%w: invalid needle", ErrInvalidArgument)
)

// Quoter splits strings into quoted and unquoted sections.
//
// The zero value has no quotes and no escape marker, so it parses every
// input as one unquoted section. Use [New] for the default quotes.
//
// Parse only reads the configuration, so concurrent Parse calls are safe.
// Changing quotes, the escape marker or the tie-break policy while another
// goroutine parses is not; guard the quoter or give each goroutine a
// [Quoter.Clone].
type Quoter struct {
	quotes *Registry
	escape string
	tie    TieBreak
}

// Option configures a Quoter built by [New]. Options apply in order.
type Option func(*Quoter) error

// WithRegistry replaces the quotes with a copy of r.
func WithRegistry(r *Registry) Option {
	return func(q *Quoter) error {
		q.quotes = r.Clone()
		return nil
	}
}

// WithQuote registers an opening quote and its closers. See [Registry.Set].
func WithQuote(open string, close ...string) Option {
	return func(q *Quoter) error {
		return q.SetQuote(open, close...)
	}
}

// WithoutQuotes removes every quote, including the defaults.
func WithoutQuotes() Option {
	return func(q *Quoter) error {
		q.ClearQuotes()
		return nil
	}
}

// WithEscape sets the escape marker.
func WithEscape(marker string) Option {
	return func(q *Quoter) error {
		return q.SetEscape(marker)
	}
}

// WithoutEscape disables escaping.
func WithoutEscape() Option {
	return func(q *Quoter) error {
		q.DisableEscape()
		return nil
	}
}

// WithTieBreak sets the policy for quotes starting at the same offset.
func WithTieBreak(t TieBreak) Option {
	return func(q *Quoter) error {
		q.SetTieBreak(t)
		return nil
	}
}

// New returns a Quoter with the default quotes ' and ", the escape marker
// \ and first-registered tie-breaking, then applies opts.
func New(opts ...Option) (*Quoter, error) {
	q := &Quoter{
		quotes: NewRegistry(),
		escape: DefaultEscape,
		tie:    TieFirst,
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// MustNew is like [New] but panics if an option fails.
func MustNew(opts ...Option) *Quoter {
	q, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// SetQuote registers an opening quote. See [Registry.Set].
func (q *Quoter) SetQuote(open string, close ...string) error {
	return q.registry().Set(open, close...)
}

// ClearQuotes removes every quote.
func (q *Quoter) ClearQuotes() { q.registry().Clear() }

func (q *Quoter) registry() *Registry {
	if q.quotes == nil {
		q.quotes = &Registry{}
	}
	return q.quotes
}

// SetEscape sets the escape marker. A blank marker fails with
// [ErrInvalidArgument]; use [Quoter.DisableEscape] to turn escaping off.
func (q *Quoter) SetEscape(marker string) error {
	if isBlank(marker) {
		return fmt.Errorf("%w: escape marker %q is blank", ErrInvalidArgument, marker)
	}
	q.escape = marker
	return nil
}

// DisableEscape turns escaping off.
func (q *Quoter) DisableEscape() { q.escape = "" }

// Escape returns the escape marker, or "" when escaping is disabled.
func (q *Quoter) Escape() string { return q.escape }

// SetTieBreak sets the policy for quotes starting at the same offset.
func (q *Quoter) SetTieBreak(t TieBreak) { q.tie = t }

// TieBreak returns the tie-break policy.
func (q *Quoter) TieBreak() TieBreak { return q.tie }

// Registry returns a copy of the registered quotes.
func (q *Quoter) Registry() *Registry { return q.quotes.Clone() }

// Clone returns an independent copy of q.
func (q *Quoter) Clone() *Quoter {
	return &Quoter{quotes: q.quotes.Clone(), escape: q.escape, tie: q.tie}
}

// Parse splits input into sections, left to right. Text outside quotes
// becomes an unquoted section and the content between an opening quote and
// its closer becomes a quoted section. The result always ends with an
// unquoted section (possibly empty) unless the last quote is unterminated,
// in which case the quoted section runs to the end of input.
//
// Parse never fails: every string is parseable.
func (q *Quoter) Parse(input string) Result {
	var (
		sections  []Section
		total     int
		remaining = input
		opens     []string
		closes    map[string][]string
	)
	if q.quotes != nil {
		opens, closes = q.quotes.opens, q.quotes.closes
	}
	for {
		at, open := scan(remaining, opens, q.escape, q.tie)
		if at < 0 {
			sections = append(sections, Section{Kind: Unquoted, Offset: total, Text: remaining})
			return Result{sections: sections}
		}
		if at > 0 {
			sections = append(sections, Section{Kind: Unquoted, Offset: total, Text: remaining[:at]})
		}
		openText := remaining[at : at+len(open)]
		total += at + len(open)
		remaining = remaining[at+len(open):]

		end, closer := scan(remaining, closes[open], q.escape, q.tie)
		if end < 0 {
			sections = append(sections, Section{Kind: Quoted, Offset: total, Text: remaining, Open: openText})
			return Result{sections: sections}
		}
		sections = append(sections, Section{
			Kind:   Quoted,
			Offset: total,
			Text:   remaining[:end],
			Open:   openText,
			Close:  remaining[end : end+len(closer)],
		})
		total += end + len(closer)
		remaining = remaining[end+len(closer):]
	}
}
