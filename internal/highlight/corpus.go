package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Flatten lists nodes and all their descendants in depth-first pre-order.
// Nodes without text are kept so indices stay stable between calls.
func Flatten(nodes []Node) []Node {
	var out []Node
	var walk func([]Node)
	walk = func(level []Node) {
		for _, n := range level {
			if n == nil {
				continue
			}
			out = append(out, n)
			walk(n.Children())
		}
	}
	walk(nodes)
	return out
}

// Corpus concatenates the text of a flattened node list, case-folded one rune
// at a time so the result has exactly one rune per visible character.
func Corpus(flat []Node) []rune {
	var out []rune
	for _, n := range flat {
		out = appendFolded(out, n.Text())
	}
	return out
}

// Text concatenates the text of a flattened node list in its original case.
func Text(flat []Node) string {
	var sb strings.Builder
	for _, n := range flat {
		sb.WriteString(n.Text())
	}
	return sb.String()
}

// Offsets returns one Offset per corpus character.
func Offsets(flat []Node) []Offset {
	var out []Offset
	for i, n := range flat {
		size := utf8.RuneCountInString(n.Text())
		for c := 0; c < size; c++ {
			out = append(out, Offset{Node: i, Char: c})
		}
	}
	return out
}

func fold(s string) []rune {
	return appendFolded(make([]rune, 0, len(s)), s)
}

func appendFolded(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, unicode.ToLower(r))
	}
	return dst
}
