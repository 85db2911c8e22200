package tiktoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuneTree_Match(t *testing.T) {
	tree := newRuneTree([]string{
		"<|end|>", "<|endoftext|>", "<|fim_prefix|>", "§mark§",
	})

	token, ok := tree.match("<|endoftext|> trailing")
	require.True(t, ok)
	assert.Equal(t, "<|endoftext|>", token)

	// Longest registered token wins even when a shorter one also
	// terminates along the walk.
	token, ok = tree.match("<|end|>oftext")
	require.True(t, ok)
	assert.Equal(t, "<|end|>", token)

	// A walk that dies past a terminal still reports the terminal.
	token, ok = tree.match("<|endofx")
	require.True(t, ok)
	assert.Equal(t, "<|end|>", token)

	// Multi-byte runes in token text.
	token, ok = tree.match("§mark§ and more")
	require.True(t, ok)
	assert.Equal(t, "§mark§", token)

	_, ok = tree.match("plain text")
	assert.False(t, ok)
	_, ok = tree.match("<|fim_")
	assert.False(t, ok)
	_, ok = tree.match("")
	assert.False(t, ok)
}

func TestRuneTree_String(t *testing.T) {
	tree := newRuneTree([]string{"<|end|>", "<|endoftext|>"})
	rendered := tree.String()
	assert.NotEmpty(t, rendered)
}

func TestScanSpecials_Offsets(t *testing.T) {
	codec, err := NewCodec(testVocab, map[string]Token{
		"<|end|>":       400,
		"<|endoftext|>": 401,
	})
	require.NoError(t, err)

	matches := codec.scanSpecials("a<|end|>b<|endoftext|>")
	require.Len(t, matches, 2)
	assert.Equal(t, specialMatch{token: "<|end|>", start: 1, end: 8},
		matches[0])
	assert.Equal(t, specialMatch{token: "<|endoftext|>", start: 9, end: 22},
		matches[1])
}

func TestScanSpecials_NonOverlapping(t *testing.T) {
	codec, err := NewCodec(testVocab, map[string]Token{"aa": 400})
	require.NoError(t, err)

	// "aaa" yields one match at offset 0; the scan resumes after the
	// matched text, so the trailing byte cannot start a second match.
	matches := codec.scanSpecials("aaa")
	require.Len(t, matches, 1)
	assert.Equal(t, specialMatch{token: "aa", start: 0, end: 2}, matches[0])
}

func TestScanSpecials_NoSpecials(t *testing.T) {
	codec, err := NewCodec(testVocab, nil)
	require.NoError(t, err)
	assert.Empty(t, codec.scanSpecials("<|endoftext|>"))
}
