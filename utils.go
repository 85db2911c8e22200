package tiktoken

import "unicode/utf8"

// TokensReady reports whether the decoded bytes of tokens form valid
// UTF-8, i.e. whether the sequence can be rendered as text without a
// dangling partial multi-byte sequence at the end. Byte-level merges
// routinely split multi-byte characters across tokens, so a prefix of
// a valid encoding may not itself be ready.
func (codec *Codec) TokensReady(tokens Tokens) bool {
	decoded, err := codec.DecodeBytes(tokens)
	if err != nil {
		return false
	}
	return utf8.Valid(decoded)
}

// TrimTokens drops trailing tokens until the remaining sequence is
// ready per TokensReady. An empty sequence is ready.
func (codec *Codec) TrimTokens(tokens Tokens) Tokens {
	trimmed := tokens
	for len(trimmed) > 0 && !codec.TokensReady(trimmed) {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return trimmed
}
