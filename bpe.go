package tiktoken

// infRank marks a boundary whose pair has no vocabulary entry.
const infRank = ^uint32(0)

// mergePart is one unit boundary during byte-pair merging. start is a
// byte offset into the chunk; rank is the merge priority of the pair
// of units beginning at that boundary.
type mergePart struct {
	start int
	rank  uint32
}

// toBPE merges one segmenter chunk into token ids, consulting the
// shared ARC cache first. Whole-chunk vocabulary hits skip both the
// cache and the merge loop.
func (codec *Codec) toBPE(chunk string) Tokens {
	if token, ok := codec.vocab.ranks[chunk]; ok {
		return Tokens{token}
	}
	if lookup, ok := codec.cache.Get(chunk); ok {
		return lookup.(Tokens)
	}
	tokens := bytePairEncode(chunk, codec.vocab.ranks)
	codec.cache.Add(chunk, tokens)
	return tokens
}

// bytePairEncode merges the bytes of chunk per the rank table and
// emits the id of each final unit. The unit byte sequences always
// concatenate back to chunk, and every final unit is present in the
// table because single bytes always are.
func bytePairEncode(chunk string, ranks map[string]Token) Tokens {
	if len(chunk) == 1 {
		return Tokens{ranks[chunk]}
	}
	parts := bytePairMerge(chunk, ranks)
	tokens := make(Tokens, 0, len(parts)-1)
	for idx := 0; idx+1 < len(parts); idx++ {
		tokens = append(tokens,
			ranks[chunk[parts[idx].start:parts[idx+1].start]])
	}
	return tokens
}

// bytePairMerge repeatedly merges the adjacent unit pair with the
// lowest rank until no pair's combined bytes exist in the table,
// returning the final unit boundaries. When several pairs share the
// lowest rank the leftmost merges first; the strict less-than in the
// scan below is what preserves that ordering.
func bytePairMerge(chunk string, ranks map[string]Token) []mergePart {
	parts := make([]mergePart, 0, len(chunk)+1)
	minRank := infRank
	minIdx := -1
	for idx := 0; idx+1 < len(chunk); idx++ {
		rank := infRank
		if r, ok := ranks[chunk[idx:idx+2]]; ok {
			rank = uint32(r)
		}
		if rank < minRank {
			minRank = rank
			minIdx = idx
		}
		parts = append(parts, mergePart{idx, rank})
	}
	parts = append(parts, mergePart{len(chunk) - 1, infRank})
	parts = append(parts, mergePart{len(chunk), infRank})

	// Rank of the pair of units starting at boundary idx, as it will
	// stand after the pending merge removes boundary minIdx+1.
	getRank := func(idx int) uint32 {
		if idx+3 < len(parts) {
			if r, ok := ranks[chunk[parts[idx].start:parts[idx+3].start]]; ok {
				return uint32(r)
			}
		}
		return infRank
	}

	for minRank != infRank {
		idx := minIdx
		if idx > 0 {
			parts[idx-1].rank = getRank(idx - 1)
		}
		parts[idx].rank = getRank(idx)
		parts = append(parts[:idx+1], parts[idx+2:]...)

		minRank = infRank
		minIdx = -1
		for j := 0; j+1 < len(parts); j++ {
			if parts[j].rank < minRank {
				minRank = parts[j].rank
				minIdx = j
			}
		}
	}
	return parts
}
