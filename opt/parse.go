package opt

import (
	"strings"
	"unicode/utf8"

	"github.com/danmuck/dispatch/argv"
)

// Parse scans the stream against specs and removes every matched token.
//
// The policy is fixed for all calls: long options match case-insensitively
// with no abbreviation; single-dash tokens are bundles of single-character
// options and match atomically; a literal "--" ends the scan and stays in
// the stream; any token that matches nothing is left in place. Parsing
// never fails: malformed usages simply pass through as ordinary tokens.
func Parse(specs []Spec, stream *argv.Stream) Set {
	set := make(Set)
	i := 0
	for i < stream.Len() {
		tok := stream.At(i)
		if tok == "--" {
			break
		}
		var matched bool
		switch {
		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			matched = parseLong(specs, stream, i, set)
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			matched = parseBundle(specs, stream, i, set)
		}
		if !matched {
			i++
		}
	}
	return set
}

func parseLong(specs []Spec, stream *argv.Stream, i int, set Set) bool {
	name, inline, hasInline := strings.Cut(stream.At(i)[2:], "=")
	sp := match(specs, name)
	if sp == nil {
		return false
	}
	if sp.Arity == Flag {
		if hasInline {
			return false
		}
		stream.Take(i, 1)
		set[sp.Name] = BoolValue(true)
		return true
	}
	var value string
	if hasInline {
		value = inline
		stream.Take(i, 1)
	} else {
		if i+1 >= stream.Len() {
			return false
		}
		value = stream.At(i + 1)
		stream.Take(i, 2)
	}
	set.add(sp, value)
	return true
}

// parseBundle matches a -abc cluster. Every character must resolve to a
// declared single-character option or the whole token passes through; a
// value-carrying character takes the rest of the cluster as its value
// (-ofile), or the next stream token (-o file).
func parseBundle(specs []Spec, stream *argv.Stream, i int, set Set) bool {
	runes := []rune(stream.At(i)[1:])
	var flags []*Spec
	var valueSpec *Spec
	var value string
	consume := 1

	for pos := 0; pos < len(runes); pos++ {
		sp := matchShort(specs, runes[pos])
		if sp == nil {
			return false
		}
		if sp.Arity == Flag {
			flags = append(flags, sp)
			continue
		}
		if rest := string(runes[pos+1:]); rest != "" {
			valueSpec, value = sp, rest
		} else if i+1 < stream.Len() {
			valueSpec, value = sp, stream.At(i+1)
			consume = 2
		} else {
			return false
		}
		break
	}

	stream.Take(i, consume)
	for _, sp := range flags {
		set[sp.Name] = BoolValue(true)
	}
	if valueSpec != nil {
		set.add(valueSpec, value)
	}
	return true
}

func match(specs []Spec, name string) *Spec {
	for idx := range specs {
		sp := &specs[idx]
		if strings.EqualFold(sp.Name, name) {
			return sp
		}
		for _, alias := range sp.Aliases {
			if strings.EqualFold(alias, name) {
				return sp
			}
		}
	}
	return nil
}

func matchShort(specs []Spec, r rune) *Spec {
	needle := string(r)
	for idx := range specs {
		sp := &specs[idx]
		if utf8.RuneCountInString(sp.Name) == 1 && strings.EqualFold(sp.Name, needle) {
			return sp
		}
		for _, alias := range sp.Aliases {
			if utf8.RuneCountInString(alias) == 1 && strings.EqualFold(alias, needle) {
				return sp
			}
		}
	}
	return nil
}
