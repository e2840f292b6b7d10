package opt

import (
	"maps"
	"strconv"
	"strings"
)

// Kind tags the variant stored in a Value.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindList
)

// Value is one parsed option value: a flag, a string, or a string list,
// mirroring the declared arity.
type Value struct {
	kind Kind
	b    bool
	s    string
	list []string
}

// BoolValue wraps a flag result.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// StringValue wraps a single string result.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// ListValue wraps a list result; the input slice is copied.
func ListValue(vs []string) Value {
	list := make([]string, len(vs))
	copy(list, vs)
	return Value{kind: KindList, list: list}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool reports the flag variant; for other kinds it reports whether a
// non-empty value is present.
func (v Value) Bool() bool {
	switch v.kind {
	case KindString:
		return v.s != ""
	case KindList:
		return len(v.list) > 0
	default:
		return v.b
	}
}

// String renders the value: the string itself, "true"/"false" for flags, a
// comma-joined list for lists.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		return strings.Join(v.list, ",")
	default:
		return v.s
	}
}

// Strings returns the list variant; a single string yields a one-element
// list and a flag or empty list yields nil. The returned slice is a copy.
func (v Value) Strings() []string {
	switch v.kind {
	case KindList:
		if len(v.list) == 0 {
			return nil
		}
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	case KindString:
		return []string{v.s}
	default:
		return nil
	}
}

// Set maps canonical option names to parsed values. Only options that
// matched during a parse are present.
type Set map[string]Value

// Has reports whether name was parsed.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Bool reports the flag value for name; false when absent.
func (s Set) Bool(name string) bool {
	v, ok := s[name]
	return ok && v.Bool()
}

// String returns the string value for name; "" when absent.
func (s Set) String(name string) string {
	v, ok := s[name]
	if !ok {
		return ""
	}
	return v.String()
}

// Strings returns the list value for name; nil when absent.
func (s Set) Strings(name string) []string {
	v, ok := s[name]
	if !ok {
		return nil
	}
	return v.Strings()
}

// Merge returns a new set combining s and over, with over winning on key
// collision.
func (s Set) Merge(over Set) Set {
	out := make(Set, len(s)+len(over))
	maps.Copy(out, s)
	maps.Copy(out, over)
	return out
}

func (s Set) add(sp *Spec, value string) {
	if sp.Arity == List {
		prev := s[sp.Name]
		s[sp.Name] = ListValue(append(prev.Strings(), value))
		return
	}
	s[sp.Name] = StringValue(value)
}
