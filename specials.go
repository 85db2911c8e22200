package tiktoken

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// AllowSpecial is the per-call permission policy for special tokens.
// The zero value disallows every special token, matching the default
// behavior of the reference encoder.
type AllowSpecial struct {
	all bool
	set mapset.Set
}

// AllowNoSpecial rejects any registered special token found in the
// input text.
var AllowNoSpecial = AllowSpecial{}

// AllowAllSpecial permits every registered special token.
var AllowAllSpecial = AllowSpecial{all: true}

// AllowSpecialSet permits exactly the given special token strings; any
// other registered special token found in the input is still an error.
func AllowSpecialSet(tokens ...string) AllowSpecial {
	set := mapset.NewThreadUnsafeSet()
	for _, token := range tokens {
		set.Add(token)
	}
	return AllowSpecial{set: set}
}

func (allowed AllowSpecial) permits(token string) bool {
	if allowed.all {
		return true
	}
	return allowed.set != nil && allowed.set.Contains(token)
}

// DisallowedSpecialTokenError is returned by Encode when the input
// contains a registered special token the policy does not permit. The
// message shape is part of the compatibility contract with the
// reference encoder and must not change.
type DisallowedSpecialTokenError struct {
	TokenText string
}

func (e *DisallowedSpecialTokenError) Error() string {
	return fmt.Sprintf(
		"The text contains a special token that is not allowed: %s",
		e.TokenText)
}

// UnknownTokenError is returned by Decode when an id resolves in
// neither the vocabulary nor the special-token table, which indicates
// ids produced against a different vocabulary.
type UnknownTokenError struct {
	Token Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("tiktoken: unknown token id %d", e.Token)
}
