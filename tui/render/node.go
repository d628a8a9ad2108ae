// Package render turns thread snapshots into renderable nodes: comment
// formatting, quote resolution, one-level hover previews, image URLs and
// permalinks. Nothing here performs I/O.
package render

// Node is one element of rendered output. The set of node types is closed.
type Node interface {
	node()
}

// PlainText is an unformatted comment, emitted when a post has no segments.
type PlainText struct {
	Text string
}

// StyledText is one comment segment with its style classes. It is always
// followed by a line break.
type StyledText struct {
	Classes []string
	Text    string
}

// EmbeddedObjection is the fixed objection artifact. Asset is the resolved
// image URL.
type EmbeddedObjection struct {
	Asset string
}

// DiceRoll is a die result in [0, 5].
type DiceRoll struct {
	Value int
}

// Placeholder renders as nothing. It stands in for a quote target that is not
// part of the displayed thread.
type Placeholder struct{}

// Image is a post attachment resolved to a display URL.
type Image struct {
	URL      string
	Filename string
}

// PostView is a fully rendered post.
type PostView struct {
	No        uint64
	Name      string
	Timestamp string
	Subject   string
	Permalink string
	Image     *Image // nil when the post has no image
	Body      []Node
	Refs      []RefView
}

// RefView is one backlink on a post. Preview is nil when reference expansion
// was suppressed; otherwise it is a PostView or a Placeholder.
type RefView struct {
	No      uint64
	Found   bool
	Preview Node
}

func (PlainText) node()         {}
func (StyledText) node()        {}
func (EmbeddedObjection) node() {}
func (DiceRoll) node()          {}
func (Placeholder) node()       {}
func (PostView) node()          {}
