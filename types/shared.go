package types

// Token is one vocabulary or special-token id. cl100k_base ids exceed
// 16 bits, so the wire representation is always 32-bit.
type Token uint32

type Tokens []Token

type TokenMap map[string]Token

const (
	// TokenSize is the byte width of one serialized Token.
	TokenSize = 4
)
