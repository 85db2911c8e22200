package tiktoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytePairEncode_SingleByte(t *testing.T) {
	assert.Equal(t, Tokens{104}, bytePairEncode("h", testVocab.ranks))
}

func TestBytePairEncode_Merges(t *testing.T) {
	tests := []struct {
		chunk    string
		expected Tokens
	}{
		// "he" (256) merges before "ll" (257) and "lo" (258), then
		// "hell" (259) and "hello" (260) take over.
		{"hello", Tokens{260}},
		{" world", Tokens{265}},
		// "he" merges, "hel" has no entry, so the "l" stays a byte.
		{"hel", Tokens{256, 108}},
		// No pair entry at all: pure byte fallback.
		{"xyz", Tokens{120, 121, 122}},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected,
			bytePairEncode(test.chunk, testVocab.ranks), test.chunk)
	}
}

func TestBytePairEncode_LeftmostFirst(t *testing.T) {
	// Both "ll" pairs in "lll" share the lowest rank; the leftmost
	// merges first, leaving the final byte unmerged.
	assert.Equal(t, Tokens{257, 108}, bytePairEncode("lll", testVocab.ranks))
}

func TestBytePairEncode_Coverage(t *testing.T) {
	// Final unit byte sequences always concatenate back to the chunk.
	chunks := []string{"hello", "hellolo", "held", "worldly", "ll🤚ll"}
	for _, chunk := range chunks {
		tokens := bytePairEncode(chunk, testVocab.ranks)
		decoded := make([]byte, 0, len(chunk))
		for _, token := range tokens {
			decoded = append(decoded, testVocab.decoder[token]...)
		}
		assert.Equal(t, chunk, string(decoded))
	}
}

func TestToBPE_WholeChunkHit(t *testing.T) {
	// Chunks present in the vocabulary bypass the merge loop.
	assert.Equal(t, Tokens{260}, testCodec.toBPE("hello"))
	assert.Equal(t, Tokens{104}, testCodec.toBPE("h"))
}

func TestToBPE_CacheStability(t *testing.T) {
	first := testCodec.toBPE("hellox")
	second := testCodec.toBPE("hellox")
	require.Equal(t, first, second)
	assert.Equal(t, Tokens{260, 120}, first)
}
