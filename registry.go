package quoter

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps opening quotes to the closing quotes that end them.
// Opening quotes keep their registration order, which is the order they
// are tried in when two of them start at the same offset.
//
// The zero value is an empty registry ready to use.
type Registry struct {
	opens  []string
	closes map[string][]string
}

// NewRegistry returns a registry holding the default symmetric quotes '
// and ".
func NewRegistry() *Registry {
	r := &Registry{}
	r.set(`'`, []string{`'`})
	r.set(`"`, []string{`"`})
	return r
}

// Set registers open with the given closing quotes. With no closers the
// quote is symmetric and closes itself; a blank closer is not read as "no
// closers" and fails like a blank opener. Duplicate closers are dropped.
// Registering a known opener replaces its closers and keeps its position.
// Blank quotes fail with [ErrInvalidArgument].
func (r *Registry) Set(open string, close ...string) error {
	if isBlank(open) {
		return fmt.Errorf("%w: open quote %q is blank", ErrInvalidArgument, open)
	}
	if len(close) == 0 {
		r.set(open, []string{open})
		return nil
	}
	closers := make([]string, 0, len(close))
	for _, c := range close {
		if isBlank(c) {
			return fmt.Errorf("%w: close quote %q for %q is blank", ErrInvalidArgument, c, open)
		}
		if !slices.Contains(closers, c) {
			closers = append(closers, c)
		}
	}
	r.set(open, closers)
	return nil
}

func (r *Registry) set(open string, closers []string) {
	if r.closes == nil {
		r.closes = make(map[string][]string)
	}
	if _, ok := r.closes[open]; !ok {
		r.opens = append(r.opens, open)
	}
	r.closes[open] = closers
}

// Clear removes every quote.
func (r *Registry) Clear() {
	r.opens = nil
	r.closes = nil
}

// Len returns the number of opening quotes.
func (r *Registry) Len() int { return len(r.opens) }

// IsOpenQuote reports whether q is a registered opening quote.
func (r *Registry) IsOpenQuote(q string) bool {
	_, ok := r.closes[q]
	return ok
}

// CloseQuotesFor returns the closing quotes for open. It fails with
// [ErrUnknownQuote] if open is not registered.
func (r *Registry) CloseQuotesFor(open string) ([]string, error) {
	closers, ok := r.closes[open]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuote, open)
	}
	return slices.Clone(closers), nil
}

// OpenQuotes returns the opening quotes in registration order.
func (r *Registry) OpenQuotes() []string {
	return slices.Clone(r.opens)
}

// AllQuotes returns every opening and closing quote, without duplicates.
func (r *Registry) AllQuotes() []string {
	var all []string
	add := func(q string) {
		if !slices.Contains(all, q) {
			all = append(all, q)
		}
	}
	for _, open := range r.opens {
		add(open)
		for _, c := range r.closes[open] {
			add(c)
		}
	}
	return all
}

// Clone returns a deep copy of r. A nil r clones to an empty registry.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return &Registry{}
	}
	c := &Registry{opens: slices.Clone(r.opens)}
	if r.closes != nil {
		c.closes = make(map[string][]string, len(r.closes))
		for open, closers := range r.closes {
			c.closes[open] = slices.Clone(closers)
		}
	}
	return c
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
