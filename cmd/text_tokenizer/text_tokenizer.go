package main

import (
	"flag"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	tiktoken "github.com/DaDee-Services/TiktokenPublic"
	"github.com/DaDee-Services/TiktokenPublic/resources"
)

// Tokenizes a text file into a binary file of little-endian 32-bit
// token ids.

func main() {
	vocabPath := flag.String("vocab",
		resources.Cl100kVocabFile,
		"path to the cl100k_base rank file")
	inputFile := flag.String("input", "",
		"input text file to tokenize")
	outputFile := flag.String("output", "tokens.bin",
		"output file to write token ids to")
	allowSpecials := flag.Bool("specials", false,
		"encode registered special tokens as their reserved ids")
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

	text, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	var tokens tiktoken.Tokens
	if *allowSpecials {
		tokens, err = codec.Encode(string(text), tiktoken.AllowAllSpecial)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		tokens = codec.EncodeOrdinary(string(text))
	}

	bin, err := tokens.ToBin()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outputFile, *bin, 0644); err != nil {
		log.Fatal(err)
	}

	log.Printf("%s of text -> %s tokens (%s written to %s)",
		humanize.Bytes(uint64(len(text))),
		humanize.Comma(int64(len(tokens))),
		humanize.Bytes(uint64(len(*bin))),
		*outputFile)
}
