// Package argv models invocation tokens as an owned, ordered stream.
//
// Option parsing and command resolution both consume from the front and may
// push tokens back; the relative order of untouched tokens never changes.
package argv

import "slices"

// Stream is a mutable, ordered buffer of invocation tokens.
type Stream struct {
	toks []string
}

// New copies tokens into a fresh stream; the input slice is never aliased.
func New(tokens []string) *Stream {
	s := &Stream{toks: make([]string, len(tokens))}
	copy(s.toks, tokens)
	return s
}

// Len reports the number of remaining tokens.
func (s *Stream) Len() int { return len(s.toks) }

// Shift removes and returns the leading token.
func (s *Stream) Shift() (string, bool) {
	if len(s.toks) == 0 {
		return "", false
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, true
}

// Unshift pushes tokens onto the front, preserving their given order.
func (s *Stream) Unshift(tokens ...string) {
	s.toks = slices.Insert(s.toks, 0, tokens...)
}

// Peek returns the leading token without consuming it.
func (s *Stream) Peek() (string, bool) {
	if len(s.toks) == 0 {
		return "", false
	}
	return s.toks[0], true
}

// At returns the token at index i.
func (s *Stream) At(i int) string { return s.toks[i] }

// Take removes n tokens starting at index i and returns them. The order of
// the remaining tokens is unchanged.
func (s *Stream) Take(i, n int) []string {
	out := make([]string, n)
	copy(out, s.toks[i:i+n])
	s.toks = slices.Delete(s.toks, i, i+n)
	return out
}

// Tokens returns a snapshot copy of the remaining tokens.
func (s *Stream) Tokens() []string {
	out := make([]string, len(s.toks))
	copy(out, s.toks)
	return out
}
