// Package resources loads tokenizer vocabularies from disk and holds
// the static encoding definitions the codec is constructed from.
package resources

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DaDee-Services/TiktokenPublic/types"
)

// LoadRanks reads a tiktoken rank file: one entry per line, a base64
// encoded byte sequence and its decimal rank separated by a single
// space. The rank doubles as the token id.
func LoadRanks(path string) (types.TokenMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rank file: %w", err)
	}
	defer file.Close()
	data, err := readMmap(file)
	if err != nil {
		return nil, fmt.Errorf("mapping rank file: %w", err)
	}

	ranks := make(types.TokenMap)
	scanner := bufio.NewScanner(bytes.NewReader(*data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: malformed rank line", path, lineNo)
		}
		seq, err := base64.StdEncoding.DecodeString(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: decoding token: %w",
				path, lineNo, err)
		}
		rank, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parsing rank: %w",
				path, lineNo, err)
		}
		ranks[string(seq)] = types.Token(rank)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rank file: %w", err)
	}
	return ranks, nil
}
