package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tiktoken "github.com/DaDee-Services/TiktokenPublic"
	"github.com/DaDee-Services/TiktokenPublic/resources"
)

// A REPL for interacting with the cl100k_base tokenizer.

func main() {
	vocabPath := flag.String("vocab",
		resources.Cl100kVocabFile,
		"path to the cl100k_base rank file")
	allowSpecials := flag.Bool("specials", true,
		"encode registered special tokens as their reserved ids")

	flag.Parse()

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

	allowed := tiktoken.AllowNoSpecial
	if *allowSpecials {
		allowed = tiktoken.AllowAllSpecial
	}

	fmt.Printf("loaded %d vocabulary entries from %s\n",
		vocab.Size(), *vocabPath)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		// Remove trailing newline and replace \n with newline.
		input = strings.Replace(input[:len(input)-1], "\\n", "\n", -1)

		tokens, err := codec.Encode(input, allowed)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%v\n", tokens)
		for _, token := range tokens {
			piece, err := codec.Decode(tiktoken.Tokens{token})
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("|%s", piece)
		}
		fmt.Printf("\n")
	}
}
