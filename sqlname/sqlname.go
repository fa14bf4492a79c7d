// Package sqlname splits SQL identifiers and select-list aliases without
// breaking quoted names apart.
package sqlname

import (
	"strings"

	"github.com/bjaus/quoter"
)

const aliasKeyword = " AS "

var identifiers = quoter.MustNew(
	quoter.WithoutQuotes(),
	quoter.WithQuote("`"),
	quoter.WithQuote(`"`),
	quoter.WithQuote("[", "]"),
)

// aliases treats the AS keyword as an opening quote that is never closed,
// so everything after the first unquoted AS lands in one quoted section.
var aliases = quoter.MustNew(
	quoter.WithoutQuotes(),
	quoter.WithQuote("`"),
	quoter.WithQuote(`"`),
	quoter.WithQuote("'"),
	quoter.WithQuote("[", "]"),
	quoter.WithQuote(aliasKeyword),
)

// SplitIdentifier splits a dotted name into its parts, unquoting each:
//
//	SplitIdentifier("db.`odd.table`.col") // ["db", "odd.table", "col"]
func SplitIdentifier(name string) []string {
	parts := identifiers.Parse(name).Explode(".", true)
	for i, p := range parts {
		parts[i] = Unquote(strings.TrimSpace(p))
	}
	return parts
}

// SplitAlias splits "expr AS alias" into the expression and the unquoted
// alias. The keyword is matched case-insensitively and ignored inside
// quotes. Without an alias the second result is empty.
func SplitAlias(expr string) (string, string) {
	for _, s := range aliases.Parse(expr).All() {
		if s.IsQuoted() && strings.EqualFold(s.Open, aliasKeyword) {
			return strings.TrimSpace(expr[:s.Start()]), Unquote(strings.TrimSpace(expr[s.Offset:]))
		}
	}
	return strings.TrimSpace(expr), ""
}

// Unquote strips one pair of identifier quotes (`x`, "x" or [x]) enclosing
// the whole name. Anything else is returned unchanged.
func Unquote(name string) string {
	r := identifiers.Parse(name)
	if r.Len() != 2 {
		return name
	}
	first, rest := r.At(0), r.At(1)
	if !first.Terminated() || first.Start() != 0 || rest.Text != "" {
		return name
	}
	return first.Text
}
