package tokenize

import (
	"strings"
	"sync"
)

// codeBase is the first rune handed out by a Codec: plane 15 private use,
// so codes never collide with real text.
const codeBase = 0xF0000

// Word is a tokenized word form. Words are only comparable with words
// produced by the same Codec.
type Word struct {
	Raw     string
	Symbols []string

	code []rune
}

// Len returns the number of symbols.
func (w Word) Len() int { return len(w.Symbols) }

// Empty reports whether the word has no symbols.
func (w Word) Empty() bool { return len(w.Symbols) == 0 }

// Code returns the interned form, one rune per symbol.
func (w Word) Code() []rune { return w.code }

// Key returns Code as a string, usable as a map key or for rune-level
// edit distance.
func (w Word) Key() string { return string(w.code) }

// Equal compares two words symbol by symbol.
func (w Word) Equal(o Word) bool {
	if len(w.code) != len(o.code) {
		return false
	}
	for i := range w.code {
		if w.code[i] != o.code[i] {
			return false
		}
	}
	return true
}

// String joins the symbols with no separator.
func (w Word) String() string { return strings.Join(w.Symbols, "") }

// Codec assigns one rune per distinct symbol. It is safe for concurrent use.
type Codec struct {
	mu      sync.Mutex
	ids     map[string]rune
	symbols []string
}

// NewCodec creates an empty codec
func NewCodec() *Codec {
	return &Codec{ids: make(map[string]rune)}
}

// Encode interns the symbols and returns their codes.
func (c *Codec) Encode(symbols []string) []rune {
	c.mu.Lock()
	defer c.mu.Unlock()

	code := make([]rune, len(symbols))
	for i, s := range symbols {
		r, ok := c.ids[s]
		if !ok {
			r = rune(codeBase + len(c.symbols))
			c.ids[s] = r
			c.symbols = append(c.symbols, s)
		}
		code[i] = r
	}
	return code
}

// Symbol returns the symbol behind a code rune.
func (c *Codec) Symbol(r rune) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := int(r) - codeBase
	if i < 0 || i >= len(c.symbols) {
		return "", false
	}
	return c.symbols[i], true
}

// Size returns the number of distinct symbols seen so far.
func (c *Codec) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.symbols)
}

// NewWord builds a Word from already segmented symbols.
func (c *Codec) NewWord(raw string, symbols []string) Word {
	return Word{Raw: raw, Symbols: symbols, code: c.Encode(symbols)}
}
