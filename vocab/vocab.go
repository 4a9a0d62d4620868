// Package vocab resolves field tokens against closed vocabularies.
//
// A Domain is an ordered list of spellings. Resolving a token returns the
// ordinal of the first spelling that matches it case-insensitively. There is
// no partial or prefix matching.
package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned (wrapped in an *UnknownTokenError) when a token
// matches none of a domain's spellings.
var ErrUnknownToken = errors.New("unrecognized token")

// Member is the ordinal of a spelling within its Domain.
type Member int

type UnknownTokenError struct {
	Domain string
	Token  string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s %q for %s", ErrUnknownToken, e.Token, e.Domain)
}

func (e *UnknownTokenError) Unwrap() error {
	return ErrUnknownToken
}

// Domain is a closed, ordered set of spellings.
type Domain struct {
	name      string
	spellings []string
}

// NewDomain creates a domain from the given spellings. Spellings must be
// non-empty runs of ASCII letters and must be unique ignoring case, otherwise
// some of them could never be resolved.
func NewDomain(name string, spellings ...string) (*Domain, error) {
	if len(spellings) == 0 {
		return nil, fmt.Errorf("domain %s has no spellings", name)
	}

	seen := make(map[string]struct{}, len(spellings))
	for _, s := range spellings {
		if s == "" {
			return nil, fmt.Errorf("domain %s has an empty spelling", name)
		}
		for i := 0; i < len(s); i++ {
			if !IsLetter(s[i]) {
				return nil, fmt.Errorf("domain %s: spelling %q contains non-letter %q", name, s, s[i])
			}
		}

		folded := strings.ToLower(s)
		if _, ok := seen[folded]; ok {
			return nil, fmt.Errorf("domain %s: duplicate spelling %q", name, s)
		}
		seen[folded] = struct{}{}
	}

	return &Domain{name: name, spellings: append([]string(nil), spellings...)}, nil
}

// MustDomain is like NewDomain but panics on error. It is meant for
// package-level tables.
func MustDomain(name string, spellings ...string) *Domain {
	d, err := NewDomain(name, spellings...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Domain) Name() string { return d.name }

// Len returns the number of members in the domain.
func (d *Domain) Len() int { return len(d.spellings) }

// Spelling returns the canonical spelling of m, or "" if m is out of range.
func (d *Domain) Spelling(m Member) string {
	if m < 0 || int(m) >= len(d.spellings) {
		return ""
	}
	return d.spellings[m]
}

// Spellings returns a copy of the domain's spellings in ordinal order.
func (d *Domain) Spellings() []string {
	return append([]string(nil), d.spellings...)
}

// Resolve returns the member whose spelling equals token, ignoring case.
func (d *Domain) Resolve(token string) (Member, error) {
	for i, s := range d.spellings {
		if strings.EqualFold(s, token) {
			return Member(i), nil
		}
	}
	return -1, &UnknownTokenError{Domain: d.name, Token: token}
}

// IsLetter reports whether c is an ASCII letter. Tokens are made of these only.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
