package types

import (
	"bytes"
	"encoding/binary"
)

// ToBin serializes the tokens as little-endian 32-bit ids.
func (tokens *Tokens) ToBin() (*[]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(*tokens)*TokenSize))
	for idx := range *tokens {
		err := binary.Write(buf, binary.LittleEndian, uint32((*tokens)[idx]))
		if err != nil {
			return nil, err
		}
	}
	byt := buf.Bytes()
	return &byt, nil
}

// TokensFromBin deserializes little-endian 32-bit ids, ignoring any
// trailing partial record.
func TokensFromBin(bin *[]byte) *Tokens {
	tokens := make(Tokens, 0, len(*bin)/TokenSize)
	buf := bytes.NewReader(*bin)
	for {
		var token uint32
		if err := binary.Read(buf, binary.LittleEndian, &token); err != nil {
			break
		}
		tokens = append(tokens, Token(token))
	}
	return &tokens
}
