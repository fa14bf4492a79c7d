package quoter

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration document that cannot be decoded
// or applied.
var ErrInvalidConfig = errors.New("invalid config")

// Config is a declarative Quoter configuration, usually loaded from YAML:
//
//	quotes:
//	  - open: "`"
//	  - open: "("
//	    close: [")"]
//	escape: "\\"
//	tie_break: longest
//
// With no quotes listed the defaults ' and " are kept. Escape left unset
// keeps the default marker; no_escape turns escaping off.
type Config struct {
	Quotes   []QuoteConfig `yaml:"quotes,omitempty" json:"quotes,omitempty"`
	Escape   *string       `yaml:"escape,omitempty" json:"escape,omitempty"`
	NoEscape bool          `yaml:"no_escape,omitempty" json:"no_escape,omitempty"`
	TieBreak TieBreak      `yaml:"tie_break,omitempty" json:"tie_break,omitempty"`
}

// QuoteConfig is one opening quote and its closers. An empty Close makes
// the quote symmetric.
type QuoteConfig struct {
	Open  string   `yaml:"open" json:"open"`
	Close []string `yaml:"close,omitempty" json:"close,omitempty"`
}

// LoadConfig decodes a YAML configuration. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Options converts the configuration into options for [New].
func (c Config) Options() []Option {
	var opts []Option
	if len(c.Quotes) > 0 {
		opts = append(opts, WithoutQuotes())
		for _, qc := range c.Quotes {
			opts = append(opts, WithQuote(qc.Open, qc.Close...))
		}
	}
	switch {
	case c.NoEscape:
		opts = append(opts, WithoutEscape())
	case c.Escape != nil:
		opts = append(opts, WithEscape(*c.Escape))
	}
	return append(opts, WithTieBreak(c.TieBreak))
}

// New builds a Quoter from the configuration.
func (c Config) New() (*Quoter, error) {
	if c.NoEscape && c.Escape != nil {
		return nil, fmt.Errorf("%w: escape and no_escape are both set", ErrInvalidConfig)
	}
	q, err := New(c.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return q, nil
}
