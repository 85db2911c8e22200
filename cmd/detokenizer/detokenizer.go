package main

import (
	"flag"
	"log"
	"os"

	tiktoken "github.com/DaDee-Services/TiktokenPublic"
	"github.com/DaDee-Services/TiktokenPublic/resources"
	"github.com/DaDee-Services/TiktokenPublic/types"
)

// Decodes a binary file of little-endian 32-bit token ids back into
// text.

func main() {
	vocabPath := flag.String("vocab",
		resources.Cl100kVocabFile,
		"path to the cl100k_base rank file")
	inputFile := flag.String("input", "",
		"input token file to decode")
	outputFile := flag.String("output", "detokenized.txt",
		"output file to write decoded text to")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}

	ranks, err := resources.LoadRanks(*vocabPath)
	if err != nil {
		log.Fatal(err)
	}
	vocab, err := tiktoken.NewVocab(ranks)
	if err != nil {
		log.Fatal(err)
	}
	codec, err := tiktoken.NewCodec(vocab, resources.Cl100kSpecialTokens())
	if err != nil {
		log.Fatal(err)
	}

	bin, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	tokens := types.TokensFromBin(&bin)

	decoded, err := codec.Decode(*tokens)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outputFile, []byte(decoded), 0644); err != nil {
		log.Fatal(err)
	}
}
