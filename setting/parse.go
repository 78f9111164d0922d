package setting

import (
	"fmt"
	"strings"

	"github.com/evan-idocoding/zsetting/enum"
)

// separator between tokens in the wire format.
const separator = ","

// parseList resolves every non-empty token of s, in input order.
//
// Tokens are trimmed; empty tokens are skipped, so "", " " and ",,," all yield
// an empty result. The first unknown token fails the whole call.
func parseList[E enum.Enum[E]](s string) ([]E, error) {
	traits := traitsOf[E]()
	var out []E
	for _, tok := range strings.Split(s, separator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, ok := traits.Lookup(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidToken, tok, strings.Join(traits.Names(), ", "))
		}
		out = append(out, v)
	}
	return out, nil
}

func traitsOf[E enum.Enum[E]]() *enum.Traits[E] {
	var zero E
	return zero.Traits()
}
