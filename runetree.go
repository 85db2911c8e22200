package tiktoken

import (
	"strings"
	"unicode/utf8"
)

// runeNode is one node of the special-token match tree. A terminal
// node carries the full token text that ends there, so a tree walk can
// report the longest registered token matching at a given offset.
type runeNode struct {
	r         rune
	token     string
	terminal  bool
	childs    map[rune]*runeNode
	childsArr []*runeNode
}

// smallNodeArr is the child count up to which a linear array scan beats
// the map lookup.
const smallNodeArr = 10

func newRuneTree(specials []string) *runeNode {
	root := &runeNode{childs: make(map[rune]*runeNode)}
	for _, token := range specials {
		node := root
		runes := []rune(token)
		for idx, r := range runes {
			child, ok := node.childs[r]
			if !ok {
				child = &runeNode{
					r:      r,
					childs: make(map[rune]*runeNode),
				}
				node.childs[r] = child
				if len(node.childs) <= smallNodeArr {
					node.childsArr = append(node.childsArr, child)
				} else {
					node.childsArr = nil
				}
			}
			if idx == len(runes)-1 {
				child.terminal = true
				child.token = token
			}
			node = child
		}
	}
	return root
}

// step descends to the child for r, or nil if no registered token
// continues this way.
func (node *runeNode) step(r rune) *runeNode {
	if node.childsArr != nil {
		for _, child := range node.childsArr {
			if child.r == r {
				return child
			}
		}
		return nil
	}
	return node.childs[r]
}

// match walks text from its start and returns the longest registered
// token that prefixes it, if any.
func (root *runeNode) match(text string) (string, bool) {
	node := root
	longest := ""
	found := false
	for _, r := range text {
		node = node.step(r)
		if node == nil {
			break
		}
		if node.terminal {
			longest = node.token
			found = true
		}
	}
	return longest, found
}

// string renders the subtree with tree characters, for debugging
// special-token tables.
func (node *runeNode) string(level int) string {
	if node == nil {
		return ""
	}
	s := string(node.r)
	if len(node.childs) == 1 {
		for r := range node.childs {
			s += node.childs[r].string(level)
		}
		return s
	}
	level++
	s += "\n"
	idx := 0
	for r := range node.childs {
		childPrefix := strings.Repeat("| ", level-1)
		if idx == len(node.childs)-1 {
			childPrefix += "└─"
		} else {
			childPrefix += "├─"
		}
		s += childPrefix + node.childs[r].string(level)
		idx++
	}
	return s
}

func (node *runeNode) String() string {
	return node.string(0)
}

// specialMatch is one occurrence of a registered special token, with
// byte offsets into the scanned text.
type specialMatch struct {
	token string
	start int
	end   int
}

// scanSpecials finds every maximal, non-overlapping occurrence of a
// registered special token in text, left to right. At a given offset
// the longest registered token wins, which holds even when one token's
// text is a prefix of another's.
func (codec *Codec) scanSpecials(text string) []specialMatch {
	if len(codec.specials) == 0 {
		return nil
	}
	var matches []specialMatch
	for idx := 0; idx < len(text); {
		if token, ok := codec.specialsTree.match(text[idx:]); ok {
			matches = append(matches, specialMatch{
				token: token,
				start: idx,
				end:   idx + len(token),
			})
			idx += len(token)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		idx += size
	}
	return matches
}
