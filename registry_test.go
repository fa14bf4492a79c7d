package quoter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/quoter"
)

func TestRegistryDefaults(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"'", `"`}, r.OpenQuotes())
	assert.Equal(t, []string{"'", `"`}, r.AllQuotes())
	assert.True(t, r.IsOpenQuote("'"))
	assert.True(t, r.IsOpenQuote(`"`))
	assert.False(t, r.IsOpenQuote("`"))
}

func TestRegistrySet(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		open  string
		close []string
		want  []string
	}{
		"symmetric":          {open: "`", want: []string{"`"}},
		"single closer":      {open: "(", close: []string{")"}, want: []string{")"}},
		"several closers":    {open: "<<", close: []string{">>", "EOF"}, want: []string{">>", "EOF"}},
		"duplicates dropped": {open: "[", close: []string{"]", "]", "|", "]"}, want: []string{"]", "|"}},
		"spaces kept":        {open: " AS ", want: []string{" AS "}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var r quoter.Registry
			require.NoError(t, r.Set(tt.open, tt.close...))
			got, err := r.CloseQuotesFor(tt.open)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{tt.open}, r.OpenQuotes())
		})
	}
}

func TestRegistrySetRejectsBlank(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	assert.ErrorIs(t, r.Set(""), quoter.ErrInvalidArgument)
	assert.ErrorIs(t, r.Set(" \t"), quoter.ErrInvalidArgument)
	assert.ErrorIs(t, r.Set("(", ")", " "), quoter.ErrInvalidArgument)
	assert.False(t, r.IsOpenQuote("("))
	assert.Equal(t, 2, r.Len())

	// A blank closer is rejected rather than read as a symmetric quote.
	assert.ErrorIs(t, r.Set("|", ""), quoter.ErrInvalidArgument)
	assert.False(t, r.IsOpenQuote("|"))
	require.NoError(t, r.Set("|"))
	closers, err := r.CloseQuotesFor("|")
	require.NoError(t, err)
	assert.Equal(t, []string{"|"}, closers)
}

func TestRegistryReplaceKeepsOrder(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	require.NoError(t, r.Set("'", "x", "y"))
	assert.Equal(t, []string{"'", `"`}, r.OpenQuotes())
	got, err := r.CloseQuotesFor("'")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestRegistryUnknownQuote(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	_, err := r.CloseQuotesFor("(")
	require.ErrorIs(t, err, quoter.ErrUnknownQuote)
	assert.ErrorIs(t, err, quoter.ErrInvalidArgument)
}

func TestRegistryAllQuotes(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	require.NoError(t, r.Set("(", ")"))
	require.NoError(t, r.Set("[", "'", "]"))
	assert.Equal(t, []string{"'", `"`, "(", ")", "[", "]"}, r.AllQuotes())
}

func TestRegistryClear(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.OpenQuotes())
	assert.Empty(t, r.AllQuotes())
	assert.False(t, r.IsOpenQuote("'"))
	require.NoError(t, r.Set("'"))
	assert.Equal(t, []string{"'"}, r.OpenQuotes())
}

func TestRegistryClone(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	c := r.Clone()
	require.NoError(t, c.Set("'", "x"))
	require.NoError(t, c.Set("`"))

	got, err := r.CloseQuotesFor("'")
	require.NoError(t, err)
	assert.Equal(t, []string{"'"}, got)
	assert.False(t, r.IsOpenQuote("`"))

	var empty quoter.Registry
	assert.Zero(t, empty.Clone().Len())
}

func TestRegistryReturnsCopies(t *testing.T) {
	t.Parallel()
	r := quoter.NewRegistry()
	opens := r.OpenQuotes()
	opens[0] = "x"
	closers, err := r.CloseQuotesFor("'")
	require.NoError(t, err)
	closers[0] = "x"

	assert.Equal(t, []string{"'", `"`}, r.OpenQuotes())
	closers, err = r.CloseQuotesFor("'")
	require.NoError(t, err)
	assert.Equal(t, []string{"'"}, closers)
}
