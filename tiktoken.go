package tiktoken

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/DaDee-Services/TiktokenPublic/types"
)

// BPE_LRU_SZ is the number of per-chunk merge results kept in the ARC
// cache shared by all Encode calls on a Codec.
const BPE_LRU_SZ = 65536

type Token = types.Token
type Tokens = types.Tokens

// Vocab is the byte-sequence to token id table for one encoding family.
// The id doubles as the merge rank: lower ids merge earlier. The table
// must contain an entry for every single byte value so that merging can
// always fall back to byte tokens.
type Vocab struct {
	ranks   map[string]Token
	decoder map[Token][]byte
}

// NewVocab validates and wraps a rank table. The map keys are raw byte
// sequences stored as strings, per the tiktoken rank file convention.
func NewVocab(ranks map[string]Token) (*Vocab, error) {
	decoder := make(map[Token][]byte, len(ranks))
	for seq, id := range ranks {
		if len(seq) == 0 {
			return nil, fmt.Errorf(
				"tiktoken: empty byte sequence for token %d", id)
		}
		if prev, dup := decoder[id]; dup {
			return nil, fmt.Errorf(
				"tiktoken: token %d maps to both %q and %q", id, prev, seq)
		}
		decoder[id] = []byte(seq)
	}
	for b := 0; b < 256; b++ {
		if _, ok := ranks[string([]byte{byte(b)})]; !ok {
			return nil, fmt.Errorf(
				"tiktoken: vocabulary missing single-byte entry 0x%02x", b)
		}
	}
	return &Vocab{ranks: ranks, decoder: decoder}, nil
}

// Size returns the number of entries in the vocabulary.
func (vocab *Vocab) Size() int {
	return len(vocab.ranks)
}

// Codec is a text to token id codec for the cl100k_base encoding
// family. All tables are immutable after construction, so a single
// Codec may be shared by any number of concurrent Encode and Decode
// callers.
type Codec struct {
	vocab           *Vocab
	specials        map[string]Token
	specialsDecoder map[Token][]byte
	specialsTree    *runeNode
	segmenter       *Segmenter
	cache           *lru.ARCCache
}

// NewCodec builds a Codec from a loaded vocabulary and a special-token
// table. Special token ids must be disjoint from vocabulary ids.
func NewCodec(vocab *Vocab, specials map[string]Token) (*Codec, error) {
	segmenter, err := NewSegmenter()
	if err != nil {
		return nil, err
	}
	specialsDecoder := make(map[Token][]byte, len(specials))
	specialsArr := make([]string, 0, len(specials))
	for text, id := range specials {
		if text == "" {
			return nil, fmt.Errorf(
				"tiktoken: empty special token text for id %d", id)
		}
		if seq, clash := vocab.decoder[id]; clash {
			return nil, fmt.Errorf(
				"tiktoken: special token %q id %d collides with vocabulary "+
					"entry %q", text, id, seq)
		}
		if prev, dup := specialsDecoder[id]; dup {
			return nil, fmt.Errorf(
				"tiktoken: special token id %d maps to both %q and %q",
				id, prev, text)
		}
		specialsDecoder[id] = []byte(text)
		specialsArr = append(specialsArr, text)
	}
	cache, _ := lru.NewARC(BPE_LRU_SZ)
	return &Codec{
		vocab:           vocab,
		specials:        specials,
		specialsDecoder: specialsDecoder,
		specialsTree:    newRuneTree(specialsArr),
		segmenter:       segmenter,
		cache:           cache,
	}, nil
}

// Encode turns text into token ids. Registered special tokens found in
// the text are emitted as their reserved ids when the policy permits
// them; the first disallowed match aborts the whole call before any
// literal encoding happens.
func (codec *Codec) Encode(text string, allowed AllowSpecial) (
	Tokens, error,
) {
	matches := codec.scanSpecials(text)
	for idx := range matches {
		if !allowed.permits(matches[idx].token) {
			return nil, &DisallowedSpecialTokenError{
				TokenText: matches[idx].token,
			}
		}
	}
	encoded := make(Tokens, 0, len(text)/3+1)
	last := 0
	for idx := range matches {
		codec.encodeSpan(text[last:matches[idx].start], &encoded)
		encoded = append(encoded, codec.specials[matches[idx].token])
		last = matches[idx].end
	}
	codec.encodeSpan(text[last:], &encoded)
	return encoded, nil
}

// EncodeOrdinary encodes text without any special-token handling:
// registered special token text is tokenized like any other text.
func (codec *Codec) EncodeOrdinary(text string) Tokens {
	encoded := make(Tokens, 0, len(text)/3+1)
	codec.encodeSpan(text, &encoded)
	return encoded
}

// Count returns the number of tokens Encode would produce for text.
func (codec *Codec) Count(text string, allowed AllowSpecial) (int, error) {
	encoded, err := codec.Encode(text, allowed)
	if err != nil {
		return 0, err
	}
	return len(encoded), nil
}

// encodeSpan segments one literal span and merges each chunk,
// appending the resulting token ids to out.
func (codec *Codec) encodeSpan(span string, out *Tokens) {
	nextChunk := codec.segmenter.Split(span)
	for {
		chunk := nextChunk()
		if chunk == nil {
			break
		}
		*out = append(*out, codec.toBPE(*chunk)...)
	}
}

// DecodeBytes maps token ids back to their raw byte sequences,
// concatenated in order. Ids are resolved against the vocabulary first
// and the special-token table second.
func (codec *Codec) DecodeBytes(encoded Tokens) ([]byte, error) {
	decoded := make([]byte, 0, len(encoded)*3)
	for _, token := range encoded {
		if seq, ok := codec.vocab.decoder[token]; ok {
			decoded = append(decoded, seq...)
		} else if seq, ok := codec.specialsDecoder[token]; ok {
			decoded = append(decoded, seq...)
		} else {
			return nil, &UnknownTokenError{Token: token}
		}
	}
	return decoded, nil
}

// Decode maps token ids back to text. The byte sequences are
// concatenated before conversion, as individual tokens may end inside
// a multi-byte UTF-8 sequence.
func (codec *Codec) Decode(encoded Tokens) (string, error) {
	decoded, err := codec.DecodeBytes(encoded)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
