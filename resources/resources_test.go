package resources

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaDee-Services/TiktokenPublic/types"
)

func TestLoadRanks(t *testing.T) {
	ranks, err := LoadRanks(filepath.Join("testdata", "toy.tiktoken"))
	require.NoError(t, err)
	assert.Len(t, ranks, 266)

	// Single bytes rank as their own value.
	assert.Equal(t, types.Token('h'), ranks["h"])
	assert.Equal(t, types.Token(0), ranks[string([]byte{0})])
	assert.Equal(t, types.Token(255), ranks[string([]byte{255})])

	// Merge entries follow in insertion order.
	assert.Equal(t, types.Token(256), ranks["he"])
	assert.Equal(t, types.Token(260), ranks["hello"])
	assert.Equal(t, types.Token(265), ranks[" world"])
}

func TestLoadRanks_MissingFile(t *testing.T) {
	_, err := LoadRanks(filepath.Join("testdata", "nonexistent.tiktoken"))
	assert.Error(t, err)
}

func TestCl100kSpecialTokens(t *testing.T) {
	specials := Cl100kSpecialTokens()
	assert.Equal(t, EndOfTextToken, specials["<|endoftext|>"])
	assert.Equal(t, FimPrefixToken, specials["<|fim_prefix|>"])
	assert.Equal(t, EndOfPromptToken, specials["<|endofprompt|>"])

	// Callers may extend their copy without affecting later calls.
	specials["<|custom|>"] = 200000
	assert.NotContains(t, Cl100kSpecialTokens(), "<|custom|>")
}

func TestEncodingForModel(t *testing.T) {
	for _, model := range []string{
		"gpt-4", "gpt-4-0613", "gpt-3.5-turbo", "gpt-3.5-turbo-16k",
		"text-embedding-ada-002",
	} {
		encoding, err := EncodingForModel(model)
		require.NoError(t, err, model)
		assert.Equal(t, Cl100kBaseName, encoding)
	}

	_, err := EncodingForModel("davinci")
	assert.Error(t, err)
}
