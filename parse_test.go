package compactjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := ParseBytes([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	require.NoError(t, err)
	require.Equal(t, Object, v.Kind())

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestParse_PreservesNumberTokens(t *testing.T) {
	v, err := ParseBytes([]byte(`[1.50, 0.001e2, -0, 100000000000000000001]`))
	require.NoError(t, err)

	var tokens []string
	for _, item := range v.Items() {
		tokens = append(tokens, item.NumberText())
	}
	assert.Equal(t, []string{"1.50", "0.001e2", "-0", "100000000000000000001"}, tokens)
}

func TestParse_DuplicateKeysKept(t *testing.T) {
	v, err := ParseBytes([]byte(`{"a": 1, "a": 2}`))
	require.NoError(t, err)
	require.Len(t, v.Members(), 2)
	assert.Equal(t, "a", v.Members()[0].Key)
	assert.Equal(t, "a", v.Members()[1].Key)
	assert.Equal(t, "1", v.Members()[0].Value.NumberText())
	assert.Equal(t, "2", v.Members()[1].Value.NumberText())
}

func TestParse_TrailingData(t *testing.T) {
	_, err := ParseBytes([]byte(`{"a": 1} {"b": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestParse_TrailingWhitespaceOK(t *testing.T) {
	v, err := ParseBytes([]byte("[1, 2]\n\t "))
	require.NoError(t, err)
	assert.Len(t, v.Items(), 2)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := ParseBytes(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestParse_Malformed(t *testing.T) {
	for _, src := range []string{`{`, `[1,]`, `{"a"}`, `tru`, `"open`} {
		_, err := ParseBytes([]byte(src))
		assert.Error(t, err, "input %q", src)
	}
}

func TestParse_Scalars(t *testing.T) {
	cases := map[string]Kind{
		`null`: Null,
		`true`: Bool,
		`"s"`:  String,
		`3.5`:  Number,
		`[]`:   Array,
		`{}`:   Object,
	}
	for src, kind := range cases {
		v, err := Parse(strings.NewReader(src))
		require.NoError(t, err, "input %q", src)
		assert.Equal(t, kind, v.Kind(), "input %q", src)
	}
}

func TestParse_DeepNesting(t *testing.T) {
	depth := maxParseDepth + 10
	src := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	_, err := ParseBytes([]byte(src))
	require.ErrorIs(t, err, ErrTooDeep)
}
