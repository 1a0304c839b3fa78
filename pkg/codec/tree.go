package codec

import "fmt"

type node struct {
	char rune
	dit  *node
	dah  *node
}

// Tree is a binary dit/dah lookup tree. Left is dit, right is dah.
// A Tree is never modified after construction and is safe for concurrent use.
type Tree struct {
	root *node
}

var defaultTree = mustTree(alphabet)

// NewTree builds a tree from a character to pattern table. Patterns must
// only contain '.' and '-' and must be unique.
func NewTree(table map[rune]string) (*Tree, error) {
	t := &Tree{root: &node{}}
	for char, code := range table {
		if code == "" {
			return nil, fmt.Errorf("codec: empty pattern for %q", char)
		}
		n := t.root
		for _, e := range code {
			var next **node
			switch e {
			case '.':
				next = &n.dit
			case '-':
				next = &n.dah
			default:
				return nil, fmt.Errorf("codec: invalid element %q in pattern for %q", e, char)
			}
			if *next == nil {
				*next = &node{}
			}
			n = *next
		}
		if n.char != 0 {
			return nil, fmt.Errorf("codec: pattern %q used by both %q and %q", code, n.char, char)
		}
		n.char = char
	}
	return t, nil
}

func mustTree(table map[rune]string) *Tree {
	t, err := NewTree(table)
	if err != nil {
		panic(err)
	}
	return t
}

// Walk follows code from the root and returns the character at its end.
func (t *Tree) Walk(code string) (rune, bool) {
	n := t.root
	for _, e := range code {
		switch e {
		case '.':
			n = n.dit
		case '-':
			n = n.dah
		default:
			return 0, false
		}
		if n == nil {
			return 0, false
		}
	}
	if n == t.root || n.char == 0 {
		return 0, false
	}
	return n.char, true
}

// Decode returns the character for a single pattern, or [UnknownRune].
func Decode(code string) rune {
	if r, ok := defaultTree.Walk(code); ok {
		return r
	}
	return UnknownRune
}
