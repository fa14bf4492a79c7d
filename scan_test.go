package quoter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/quoter"
)

func TestFindNext(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		haystack   string
		needles    []string
		marker     string
		wantOffset int
		wantNeedle string
	}{
		// Overlapping needles at the same offset: the first listed wins.
		"tie goes to first needle":      {haystack: "aQT2b", needles: []string{"QT", "QT2"}, wantOffset: 1, wantNeedle: "QT"},
		"tie order reversed":            {haystack: "aQT2b", needles: []string{"QT2", "QT"}, wantOffset: 1, wantNeedle: "QT2"},
		"earliest offset wins":          {haystack: `a"b'c`, needles: []string{"'", `"`}, wantOffset: 1, wantNeedle: `"`},
		"escaped occurrence skipped":    {haystack: `a\'b'`, needles: []string{"'"}, marker: `\`, wantOffset: 4, wantNeedle: "'"},
		"double escape does not escape": {haystack: `a\\'b`, needles: []string{"'"}, marker: `\`, wantOffset: 3, wantNeedle: "'"},
		"every occurrence escaped":      {haystack: `\'\'`, needles: []string{"'"}, marker: `\`, wantOffset: -1},
		"escaping disabled":             {haystack: `a\'b'`, needles: []string{"'"}, wantOffset: 2, wantNeedle: "'"},
		"case insensitive":              {haystack: "xqTy", needles: []string{"QT"}, wantOffset: 1, wantNeedle: "QT"},
		"no match":                      {haystack: "abc", needles: []string{"'", `"`}, wantOffset: -1},
		"no needles":                    {haystack: "abc", wantOffset: -1},
		"needle longer than haystack":   {haystack: "ab", needles: []string{"abc"}, wantOffset: -1},
		"overlapping occurrences":       {haystack: `\aaa`, needles: []string{"aa"}, marker: `\`, wantOffset: 2, wantNeedle: "aa"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			offset, needle, err := quoter.FindNext(tt.haystack, tt.needles, tt.marker)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantNeedle, needle)
		})
	}
}

func TestFindNextRejectsEmptyNeedle(t *testing.T) {
	t.Parallel()
	offset, needle, err := quoter.FindNext("abc", []string{"a", ""}, "")
	require.ErrorIs(t, err, quoter.ErrInvalidNeedle)
	assert.ErrorIs(t, err, quoter.ErrInvalidArgument)
	assert.Equal(t, -1, offset)
	assert.Empty(t, needle)
}

func TestTieBreakText(t *testing.T) {
	t.Parallel()
	var tb quoter.TieBreak
	require.NoError(t, tb.UnmarshalText([]byte("longest")))
	assert.Equal(t, quoter.TieLongest, tb)
	b, err := tb.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "longest", string(b))
	assert.Equal(t, "first", quoter.TieFirst.String())
	assert.Equal(t, "TieBreak(9)", quoter.TieBreak(9).String())

	assert.ErrorIs(t, tb.UnmarshalText([]byte("shortest")), quoter.ErrInvalidArgument)
	_, err = quoter.TieBreak(9).MarshalText()
	assert.ErrorIs(t, err, quoter.ErrInvalidArgument)
}
