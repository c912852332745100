package highlight

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const (
	// MarkerTag is the element wrapped around matched text.
	MarkerTag = "mark"
	// MarkerClass is set on every marker fragment.
	MarkerClass = "search-hit"
	// ActiveClass is added to the fragments of the active match.
	ActiveClass = "active"
)

// MarkerID is the element id of the first fragment of a match.
func MarkerID(match int) string {
	return "search-hit-" + strconv.Itoa(match)
}

// Highlight locates query in the visible text under nodes and returns the
// edits that wrap every match in a marker.
//
// entries lists, in order, the global matches that belong to the page being
// rendered: the n-th located match takes entries[n], and matches without an
// entry are left alone. The match whose ordinal equals active is flagged.
// An empty query or entry list yields an empty Result.
func Highlight(nodes []Node, query string, entries []Entry, active int) Result {
	if query == "" || len(entries) == 0 {
		return Result{}
	}

	flat := Flatten(nodes)
	starts := Locate(Corpus(flat), query)
	if len(starts) == 0 {
		return Result{}
	}
	spans := Spans(starts, len(fold(query)))
	offsets := Offsets(flat)

	texts := make(map[int][]rune)
	textOf := func(i int) []rune {
		t, ok := texts[i]
		if !ok {
			t = []rune(flat[i].Text())
			texts[i] = t
		}
		return t
	}

	var res Result
	marks := make(map[int][]Mark)
	for highlightIndex, span := range spans {
		if highlightIndex >= len(entries) {
			break
		}
		entry := entries[highlightIndex]
		id := MarkerID(entry.Match)
		isActive := entry.Match == active
		if isActive {
			res.ActiveID = id
		}

		first := offsetAt(offsets, span.Start)
		last := offsetAt(offsets, span.End)

		var matched strings.Builder
		for n := first.Node; n <= last.Node; n++ {
			text := textOf(n)
			from, to := 0, len(text)
			if n == first.Node {
				from = first.Char
			}
			if n == last.Node {
				to = last.Char + 1
			}
			if from >= to {
				continue
			}
			m := Mark{Start: from, End: to, Match: entry.Match, Active: isActive}
			if n == first.Node {
				m.ID = id
			}
			marks[n] = append(marks[n], m)
			matched.WriteString(string(text[from:to]))
		}
		res.Matches = append(res.Matches, matched.String())
	}

	nodeIdx := make([]int, 0, len(marks))
	for n := range marks {
		nodeIdx = append(nodeIdx, n)
	}
	sort.Ints(nodeIdx)
	for _, n := range nodeIdx {
		res.Edits = append(res.Edits, Edit{
			Node:   n,
			NodeID: flat[n].ID(),
			Markup: Markup(textOf(n), marks[n]),
			Marks:  marks[n],
		})
	}
	return res
}

// Markup renders text with the given ascending, non-overlapping marks. All
// text is HTML-escaped.
func Markup(text []rune, marks []Mark) string {
	var sb strings.Builder
	pos := 0
	for _, m := range marks {
		sb.WriteString(html.EscapeString(string(text[pos:m.Start])))
		writeOpenTag(&sb, m)
		sb.WriteString(html.EscapeString(string(text[m.Start:m.End])))
		sb.WriteString("</" + MarkerTag + ">")
		pos = m.End
	}
	sb.WriteString(html.EscapeString(string(text[pos:])))
	return sb.String()
}

func writeOpenTag(sb *strings.Builder, m Mark) {
	class := MarkerClass
	if m.Active {
		class += " " + ActiveClass
	}
	fmt.Fprintf(sb, `<%s class="%s" data-match="%d"`, MarkerTag, class, m.Match)
	if m.ID != "" {
		fmt.Fprintf(sb, ` id="%s"`, html.EscapeString(m.ID))
	}
	sb.WriteByte('>')
}

// offsetAt panics on a lookup outside the table: the corpus and table are
// built from the same nodes, so a miss means mis-highlighted text.
func offsetAt(offsets []Offset, i int) Offset {
	if i < 0 || i >= len(offsets) {
		panic(fmt.Sprintf("highlight: corpus offset %d outside table of %d", i, len(offsets)))
	}
	return offsets[i]
}
