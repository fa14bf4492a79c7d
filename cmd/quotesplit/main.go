// Command quotesplit splits text into quoted and unquoted sections.
//
// Usage:
//
//	quotesplit [flags] [text...]
//
// Text comes from the arguments, joined by spaces, or from stdin. By default
// the sections are printed as a table, styled with -border and -title;
// -format selects any other format
// (json, yaml, csv, tsv, markdown, html, list, plain, jsonl, raw or
// go-template=...). With -explode the input is split on a delimiter found
// outside quotes and each piece is printed on its own line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bjaus/quoter"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := run(os.Args[1:], os.Stdin, os.Stdout, log)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		log.WithError(err).Error("quotesplit failed")
		os.Exit(1)
	}
}

// quoteFlags collects repeated -q values of the form "OPEN [CLOSE...]".
type quoteFlags []quoter.QuoteConfig

func (q *quoteFlags) String() string {
	if q == nil {
		return ""
	}
	parts := make([]string, len(*q))
	for i, qc := range *q {
		parts[i] = strings.Join(append([]string{qc.Open}, qc.Close...), " ")
	}
	return strings.Join(parts, ", ")
}

func (q *quoteFlags) Set(v string) error {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty quote", quoter.ErrInvalidArgument)
	}
	*q = append(*q, quoter.QuoteConfig{Open: fields[0], Close: fields[1:]})
	return nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("quotesplit", flag.ContinueOnError)
	fs.SetOutput(log.Out)
	var quotes quoteFlags
	fs.Var(&quotes, "q", `quote as "OPEN [CLOSE...]"; repeatable, replaces the default quotes`)
	var (
		configPath = fs.String("config", "", "YAML quoter configuration file")
		escape     = fs.String("escape", quoter.DefaultEscape, "escape marker")
		noEscape   = fs.Bool("no-escape", false, "disable escaping")
		longest    = fs.Bool("longest", false, "prefer the longest quote when two start at the same offset")
		format     = fs.String("format", string(quoter.Table), "output format")
		only       = fs.String("only", "", `print only "quoted" or "unquoted" sections`)
		explode    = fs.String("explode", "", "split on this delimiter outside quotes")
		limit      = fs.Int("limit", -1, "maximum number of pieces for -explode")
		dropQuoted = fs.Bool("drop-quoted", false, "leave quoted sections out of -explode pieces")
		border     = fs.String("border", quoter.BorderRounded.String(), "table border: rounded, none, ascii, heavy or double")
		title      = fs.String("title", "", "table title")
		verbose    = fs.Bool("v", false, "log debug details")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if len(quotes) > 0 {
		cfg.Quotes = quotes
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "escape":
			cfg.Escape = escape
			cfg.NoEscape = false
		case "no-escape":
			cfg.NoEscape = *noEscape
			if *noEscape {
				cfg.Escape = nil
			}
		case "longest":
			if *longest {
				cfg.TieBreak = quoter.TieLongest
			}
		}
	})
	q, err := cfg.New()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"quotes":    q.Registry().AllQuotes(),
		"escape":    q.Escape(),
		"tie_break": q.TieBreak().String(),
	}).Debug("quoter configured")

	input, err := readInput(fs.Args(), stdin)
	if err != nil {
		return err
	}
	r := q.Parse(input)
	log.WithFields(logrus.Fields{"bytes": len(input), "sections": r.Len()}).Debug("input parsed")

	if *explode != "" {
		for _, piece := range r.ExplodeN(*explode, !*dropQuoted, *limit) {
			if _, err := fmt.Fprintln(stdout, piece); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := quoter.ParseFormat(*format)
	if err != nil {
		return err
	}
	seq := slices.Values(r.Sections())
	if *only != "" {
		var k quoter.Kind
		if err := k.UnmarshalText([]byte(*only)); err != nil {
			return err
		}
		seq = r.Filter(k)
	}
	if f == quoter.Table {
		opts := quoter.TableOptions{Title: *title}
		if err := opts.Border.UnmarshalText([]byte(*border)); err != nil {
			return err
		}
		return quoter.WriteTable(stdout, opts, slices.Collect(seq)...)
	}
	if *only == "" {
		return r.Write(stdout, f)
	}
	return quoter.WriteIter(stdout, f, seq)
}

func loadConfig(path string) (quoter.Config, error) {
	if path == "" {
		return quoter.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return quoter.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return quoter.LoadConfig(f)
}

// readInput joins args with spaces, or reads stdin without its final
// newline when there are no args.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
