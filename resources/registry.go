package resources

import (
	"fmt"
	"strings"

	"github.com/DaDee-Services/TiktokenPublic/types"
)

// Cl100kBaseName is the encoding family this codec implements.
const Cl100kBaseName = "cl100k_base"

// Cl100kVocabFile is the conventional rank file name for cl100k_base.
const Cl100kVocabFile = "cl100k_base.tiktoken"

// Reserved cl100k_base special token ids.
const (
	EndOfTextToken   types.Token = 100257
	FimPrefixToken   types.Token = 100258
	FimMiddleToken   types.Token = 100259
	FimSuffixToken   types.Token = 100260
	EndOfPromptToken types.Token = 100276
)

// Cl100kSpecialTokens returns the special-token table for cl100k_base.
// A fresh map is returned on each call so callers may extend it.
func Cl100kSpecialTokens() types.TokenMap {
	return types.TokenMap{
		"<|endoftext|>":   EndOfTextToken,
		"<|fim_prefix|>":  FimPrefixToken,
		"<|fim_middle|>":  FimMiddleToken,
		"<|fim_suffix|>":  FimSuffixToken,
		"<|endofprompt|>": EndOfPromptToken,
	}
}

// modelPrefixToEncoding covers versioned model names, e.g.
// "gpt-4-0613" or "gpt-3.5-turbo-16k".
var modelPrefixToEncoding = map[string]string{
	"gpt-4-":         Cl100kBaseName,
	"gpt-3.5-turbo-": Cl100kBaseName,
	"gpt-35-turbo-":  Cl100kBaseName,
}

var modelToEncoding = map[string]string{
	"gpt-4":                  Cl100kBaseName,
	"gpt-3.5-turbo":          Cl100kBaseName,
	"gpt-35-turbo":           Cl100kBaseName,
	"text-embedding-ada-002": Cl100kBaseName,
	"text-embedding-3-small": Cl100kBaseName,
	"text-embedding-3-large": Cl100kBaseName,
}

// EncodingForModel maps a model name to its encoding family name.
func EncodingForModel(model string) (string, error) {
	if encoding, ok := modelToEncoding[model]; ok {
		return encoding, nil
	}
	for prefix, encoding := range modelPrefixToEncoding {
		if strings.HasPrefix(model, prefix) {
			return encoding, nil
		}
	}
	return "", fmt.Errorf("no encoding registered for model %q", model)
}
