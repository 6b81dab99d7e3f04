package corpus_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poolcheck/corpus"
	"github.com/katalvlaran/poolcheck/pool"
)

const lenient = `
// leading comment
[
  [[0], [3]],            // disjoint singles
  [["AC", "ad", "Bc", 3], [1, 2],],   /* names and
                                        trailing commas */
  [[0, 0, 1]],
  [],
]
`

func TestDecode_Lenient(t *testing.T) {
	cases, err := corpus.Decode(strings.NewReader(lenient))
	require.NoError(t, err)
	require.Len(t, cases, 4)

	assert.Equal(t, corpus.Case{pool.MustItem(pool.AC), pool.MustItem(pool.BD)}, cases[0])
	assert.Equal(t, corpus.Case{
		pool.MustItem(pool.AC, pool.AD, pool.BC, pool.BD),
		pool.MustItem(pool.AD, pool.BC),
	}, cases[1])
	assert.Equal(t, corpus.Case{pool.MustItem(pool.AC, pool.AD)}, cases[2], "duplicates collapse")
	assert.Empty(t, cases[3])
}

func TestDecode_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n", "// nothing here\n", "/* nor here */", "[]", "[ /* none */ ]"} {
		cases, err := corpus.Decode(strings.NewReader(in))
		require.NoError(t, err, "%q", in)
		assert.Empty(t, cases, "%q", in)
	}
}

func TestDecode_BlockComments(t *testing.T) {
	cases, err := corpus.Decode(strings.NewReader("[ /* first case */ [[0, 3], [1]], ]"))
	require.NoError(t, err)
	assert.Equal(t, []corpus.Case{{pool.MustItem(pool.AC, pool.BD), pool.MustItem(pool.AD)}}, cases)
}

func TestDecode_LinesSurviveComments(t *testing.T) {
	in := `/* header
   spanning lines */
[
  [[0]], // fine
  [[9]],
]`
	_, err := corpus.Decode(strings.NewReader(in))
	require.ErrorIs(t, err, pool.ErrInvalidItem)
	assert.Contains(t, err.Error(), "case 1 item 0 (line 5)")
}

func TestDecode_InvalidItemsAggregated(t *testing.T) {
	in := `[
  [[0], []],
  [[7]],
  [["XY", 1]],
]`
	cases, err := corpus.Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Nil(t, cases)
	assert.ErrorIs(t, err, pool.ErrInvalidItem)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.Contains(t, merr.Errors[0].Error(), "case 0 item 1 (line 2)")
	assert.Contains(t, merr.Errors[1].Error(), "case 1 item 0 (line 3)")
	assert.Contains(t, merr.Errors[2].Error(), "case 2 item 0 (line 4)")
	for _, e := range merr.Errors {
		assert.ErrorIs(t, e, pool.ErrInvalidItem)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{
		`{"a": 1}`,
		`[[0]]`,
		`[[[[0]]]]`,
		`[[[0]`,
		`[[[0]]] /* unterminated`,
		`[[["AC"]]] [[[1]]]`,
	} {
		_, err := corpus.Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, corpus.ErrMalformed, "%q", in)
	}
}

func TestEncode_Canonical(t *testing.T) {
	cases := []corpus.Case{
		{pool.MustItem(pool.AC), pool.MustItem(pool.BD, pool.AD)},
		{},
	}
	var buf bytes.Buffer
	require.NoError(t, corpus.Encode(&buf, cases))
	assert.Equal(t, "[\n  [[0],[1,3]],\n  []\n]\n", buf.String())

	back, err := corpus.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cases, back)

	buf.Reset()
	require.NoError(t, corpus.Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	cases, err := corpus.Generate(corpus.GenConfig{Cases: 20, MinLen: 1, MaxLen: 12, Seed: 42})
	require.NoError(t, err)

	require.NoError(t, corpus.Save(path, cases))
	back, err := corpus.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cases, back)

	_, err = corpus.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
