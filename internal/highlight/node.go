// Package highlight finds occurrences of a search query in the visible text of
// an element tree and renders them as <mark> annotations, including matches
// that straddle several text-bearing nodes.
//
// The engine never mutates its input. Highlight returns explicit per-node
// edits that the caller applies to whatever surface it renders.
package highlight

// Node is the capability the engine needs from an element.
type Node interface {
	// ID is a stable identifier for the node; it may be empty.
	ID() string
	// Text is the text carried directly by the node. Containers whose text
	// lives in child nodes return "".
	Text() string
	// Children returns the child nodes in document order.
	Children() []Node
}

// Offset maps one corpus character back to the node that produced it.
type Offset struct {
	Node int // index into the flattened node list
	Char int // rune index within that node's text
}

// Span is the inclusive corpus range of one match.
type Span struct {
	Start int
	End   int
}

// Entry correlates a global match ordinal with the page that displays it.
type Entry struct {
	Page  int `json:"page"`
	Match int `json:"match"`
}

// Mark is one marker fragment inside a single node, covering the rune range
// [Start, End) of that node's text. A match spanning three nodes produces
// three marks sharing the same Match; only the first carries the ID.
type Mark struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Match  int    `json:"match"`
	ID     string `json:"id,omitempty"`
	Active bool   `json:"active"`
}

// Edit replaces the rendered content of one flattened node.
type Edit struct {
	Node   int    `json:"node"`
	NodeID string `json:"node_id,omitempty"`
	Markup string `json:"markup"`
	Marks  []Mark `json:"marks"`
}

// Result is the outcome of one Highlight call.
type Result struct {
	Edits    []Edit   `json:"edits"`
	Matches  []string `json:"matches"`
	ActiveID string   `json:"active_id,omitempty"`
}
