package opt

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpec = errors.New("opt: invalid option spec")

// Arity declares how many values an option carries.
type Arity int

const (
	// Flag is a boolean option with no value.
	Flag Arity = iota
	// Single carries one string value; repeats keep the last occurrence.
	Single
	// List accumulates a string value per occurrence.
	List
)

// Spec declares one option: canonical name, aliases, and value arity.
// Aliases may be symbolic single characters such as "?".
type Spec struct {
	Name    string
	Aliases []string
	Arity   Arity
}

// ParseSpecs builds option specs from declaration strings.
//
// A declaration is a |-separated name list, first name canonical, with an
// optional arity marker: none for a flag, "=s" for a single string value,
// "=s@" for a repeatable list. Examples: "verbose|v", "mode|m=s",
// "label|l=s@", "help|h|?".
func ParseSpecs(decls ...string) ([]Spec, error) {
	specs := make([]Spec, 0, len(decls))
	seen := make(map[string]struct{})
	for _, decl := range decls {
		sp, err := parseSpec(decl)
		if err != nil {
			return nil, err
		}
		for _, name := range append([]string{sp.Name}, sp.Aliases...) {
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: duplicate name %q in %q", ErrInvalidSpec, name, decl)
			}
			seen[key] = struct{}{}
		}
		specs = append(specs, sp)
	}
	return specs, nil
}

// MustSpecs is ParseSpecs for static declarations; panics on a bad spec.
func MustSpecs(decls ...string) []Spec {
	specs, err := ParseSpecs(decls...)
	if err != nil {
		panic(err)
	}
	return specs
}

func parseSpec(decl string) (Spec, error) {
	body := strings.TrimSpace(decl)
	arity := Flag
	if names, marker, ok := strings.Cut(body, "="); ok {
		switch marker {
		case "s":
			arity = Single
		case "s@":
			arity = List
		default:
			return Spec{}, fmt.Errorf("%w: unsupported arity marker %q in %q", ErrInvalidSpec, marker, decl)
		}
		body = names
	}
	parts := strings.Split(body, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Spec{}, fmt.Errorf("%w: empty name in %q", ErrInvalidSpec, decl)
		}
	}
	sp := Spec{Name: parts[0], Arity: arity}
	if len(parts) > 1 {
		sp.Aliases = parts[1:]
	}
	return sp, nil
}
