package tiktoken

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// SPLIT_REGEX is the cl100k_base segmentation pattern. Chunks produced
// by it are the units the byte-pair merger works on; merges never
// cross a chunk boundary. Numeric runs are capped at three digits,
// letter runs are uncapped, and a run of non-newline whitespace that
// precedes non-whitespace attaches to the following chunk via the
// trailing `\s+(?!\S)` alternative. The lookahead in that alternative
// is why this is a regexp2 pattern rather than a stdlib one.
const SPLIT_REGEX = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?` +
	`\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

const REGEX_ERROR = "tiktoken: error compiling regular expression: %v"

// Segmenter splits raw text into the maximal chunks the segmentation
// pattern defines. It holds only the compiled pattern and is safe for
// concurrent use.
type Segmenter struct {
	pattern *regexp2.Regexp
}

func NewSegmenter() (*Segmenter, error) {
	pattern, err := regexp2.Compile(SPLIT_REGEX, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf(REGEX_ERROR, err)
	}
	return &Segmenter{pattern: pattern}, nil
}

// Split returns an iterator over the chunks of text. Each invocation
// returns one chunk, or nil once the text is exhausted. Concatenating
// the chunks in order reproduces text exactly.
func (seg *Segmenter) Split(text string) func() *string {
	runes := []rune(text)
	pos := 0
	match, _ := seg.pattern.FindRunesMatch(runes)
	return func() *string {
		var chunk string
		switch {
		case pos >= len(runes):
			return nil
		case match == nil:
			chunk = string(runes[pos:])
			pos = len(runes)
		case match.Index > pos:
			// The pattern covers any input, but never drop text should
			// a match start past the cursor.
			chunk = string(runes[pos:match.Index])
			pos = match.Index
		default:
			chunk = match.String()
			pos = match.Index + match.Length
			match, _ = seg.pattern.FindNextMatch(match)
		}
		return &chunk
	}
}

// SplitAll eagerly collects every chunk of text.
func (seg *Segmenter) SplitAll(text string) []string {
	chunks := make([]string, 0, len(text)/3+1)
	nextChunk := seg.Split(text)
	for {
		chunk := nextChunk()
		if chunk == nil {
			break
		}
		chunks = append(chunks, *chunk)
	}
	return chunks
}
