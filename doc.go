// Package quoter splits strings into quoted and unquoted sections.
//
// A [Quoter] holds a set of quote pairs and an escape marker. [Quoter.Parse]
// walks the input left to right, finds the earliest unescaped opening quote,
// then the earliest unescaped closer registered for it, and emits a
// [Section] for every span:
//
//	q := quoter.MustNew()
//	r := q.Parse(`It\'s a 'quoted' string`)
//	// Unquoted(0, "It\\'s a ")
//	// Quoted(9, "quoted", "'", "'")
//	// Unquoted(16, " string")
//
// Parsing never fails. A quote without a closer runs to the end of the
// input, and concatenating the raw text of every section reproduces the
// input exactly.
//
// # Quotes
//
// A new Quoter knows the symmetric quotes ' and ". Openers and closers may
// differ and may be longer than one character; one opener may accept
// several closers:
//
//	q := quoter.MustNew(
//		quoter.WithoutQuotes(),
//		quoter.WithQuote("`"),
//		quoter.WithQuote("(", ")"),
//		quoter.WithQuote("<<", ">>", "EOF"),
//	)
//
// Quotes are matched case-insensitively. When two openers start at the same
// offset the first registered wins; [WithTieBreak] with [TieLongest]
// prefers the longer one instead.
//
// # Escaping
//
// A quote preceded by an odd number of escape markers is not a quote. The
// default marker is a backslash; [WithEscape] changes it and
// [WithoutEscape] turns escaping off. Escape markers are left in the
// section text. [IsEscaped] and [FindNext] expose the underlying scanner.
//
// # Results
//
// A [Result] is an ordered list of sections owned by the caller. Besides
// iteration it offers [Result.Explode], which splits on a delimiter found
// outside quotes, and rendering in several formats through [Result.Write]:
//
//	r.Write(os.Stdout, quoter.Table)
//	r.Write(os.Stdout, quoter.GoTemplate("{{.Offset}} {{.Text}}"))
//
// # Configuration
//
// [LoadConfig] reads a YAML document describing quotes, the escape marker
// and the tie-break policy; [Config.New] turns it into a Quoter.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument]: blank quote or escape marker
//   - [ErrUnknownQuote]: closers requested for an unregistered opener
//   - [ErrInvalidNeedle]: empty needle passed to [FindNext]
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrInvalidConfig]: configuration that cannot be decoded or applied
//
// ErrUnknownQuote and ErrInvalidNeedle wrap ErrInvalidArgument.
package quoter
