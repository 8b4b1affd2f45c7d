package parser

import (
	"strings"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/td0m/devbook/pkg/messages"
)

// ArgumentMultimap holds the values of every prefix in the order they were
// typed, plus the text before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   *mapx.MultiMap[Prefix, string]
}

type occurrence struct {
	prefix Prefix
	at     int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace, so a/ inside an email is kept as
// part of the value.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	found := []occurrence{}
	for i := 0; i < len(args); i++ {
		if i > 0 && !isSpace(args[i-1]) {
			continue
		}
		if p, ok := prefixAt(args, i, prefixes); ok {
			found = append(found, occurrence{prefix: p, at: i})
			i += len(p) - 1
		}
	}

	am := ArgumentMultimap{values: mapx.NewMultiBuiltinMap[Prefix, string](len(prefixes))}
	if len(found) == 0 {
		am.preamble = strings.TrimSpace(args)
		return am
	}
	am.preamble = strings.TrimSpace(args[:found[0].at])
	for i, o := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].at
		}
		_ = am.values.Put(o.prefix, strings.TrimSpace(args[o.at+len(o.prefix):end]))
	}
	return am
}

// prefixAt picks the longest prefix starting at i
func prefixAt(args string, i int, prefixes []Prefix) (Prefix, bool) {
	var best Prefix
	for _, p := range prefixes {
		if len(p) > len(best) && strings.HasPrefix(args[i:], string(p)) {
			best = p
		}
	}
	return best, best != ""
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Value returns the last value typed for p
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.Values(p)
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// Values is empty, never nil, when p was not typed
func (a ArgumentMultimap) Values(p Prefix) []string {
	vs, ok := a.values.Get(p)
	if !ok {
		return []string{}
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

func (a ArgumentMultimap) Has(p Prefix) bool {
	_, ok := a.values.Get(p)
	return ok
}

// ArePrefixesPresent reports whether every prefix was typed at least once
func (a ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !a.Has(p) {
			return false
		}
	}
	return true
}

func (a ArgumentMultimap) AnyPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if a.Has(p) {
			return true
		}
	}
	return false
}

// VerifyNoDuplicatePrefixesFor fails when any of the single valued prefixes
// was typed more than once. The message names them in the order given.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	dups := []string{}
	for _, p := range prefixes {
		if vs, _ := a.values.Get(p); len(vs) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &Error{Kind: ErrDuplicatePrefix, Msg: messages.DuplicatePrefixes(dups...)}
}
